package meta

// HeaderMsgName is the name of the synthetic header message.
const HeaderMsgName = "Header"

// NewHeaderMsg builds the common header record: a timestamp and a frame id.
// Many definitions reference Header by name without it being part of the
// input tree.
func NewHeaderMsg() *Msg {
	header := NewMsg(HeaderMsgName)
	header.AddField("time_stamp", "time")
	header.AddField("frame_id", "string")
	return header
}

// InjectHeader appends the header message to p.
func InjectHeader(p *Package) {
	p.AddMessage(NewHeaderMsg())
}
