package response

type responseState uint8

const (
	stateStatusLine responseState = iota
	stateHeaders
	stateBody
	stateDone
)

var stateNames = [...]string{
	stateStatusLine: "status line",
	stateHeaders:    "headers",
	stateBody:       "body",
	stateDone:       "done",
}

func (rs responseState) String() string {
	if int(rs) < len(stateNames) {
		return stateNames[rs]
	}
	return "unknown"
}

func (rs responseState) advance() responseState {
	if rs >= stateDone {
		panic("invalid response state advance: " + rs.String())
	}
	return rs + 1
}
