package companion

// Transport delivers snapshot payloads to the companion and yields inbound
// command payloads. Implementations own reliability, retries and framing;
// the bridge only produces and consumes message bodies.
type Transport interface {
	SendSnapshot(data []byte) error
	OnCommand(fn func(data []byte))
}

// Loopback is an in-process transport for tests and single-device setups.
// Sent payloads are recorded; Inject feeds a command to the registered
// handler as if it arrived from the companion.
type Loopback struct {
	Sent    [][]byte
	handler func([]byte)
}

func (l *Loopback) SendSnapshot(data []byte) error {
	l.Sent = append(l.Sent, data)
	return nil
}

func (l *Loopback) OnCommand(fn func(data []byte)) {
	l.handler = fn
}

// Inject delivers one inbound command payload.
func (l *Loopback) Inject(data []byte) {
	if l.handler != nil {
		l.handler(data)
	}
}

// Nop discards snapshots and never delivers commands. Used when the
// companion link is disabled.
type Nop struct{}

func (Nop) SendSnapshot([]byte) error   { return nil }
func (Nop) OnCommand(func(data []byte)) {}
