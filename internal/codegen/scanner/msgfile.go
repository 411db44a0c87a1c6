package scanner

import (
	"path/filepath"
	"strings"

	"github.com/Alia5/rosmsgc/internal/codegen/meta"
)

// MsgExt is the file extension of message definition files.
const MsgExt = ".msg"

// IsMsgFile reports whether the file name marks a message definition.
func IsMsgFile(fileName string) bool {
	return filepath.Ext(fileName) == MsgExt
}

// MsgName derives the message type name from a definition file path.
// "geometry_msgs/msg/Vector3.msg" => "Vector3"
func MsgName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), MsgExt)
}

// BuildMsg converts a token sequence into a message, one field per token.
func BuildMsg(name string, tokens []Token) *meta.Msg {
	msg := meta.NewMsg(name)
	for _, tok := range tokens {
		msg.AddField(tok.Name, tok.Type)
	}
	return msg
}

// ParseMsg tokenizes source and builds the message named name.
// Empty source yields a message without fields.
func ParseMsg(name, source string) *meta.Msg {
	tokens, _ := Tokenize(source)
	return BuildMsg(name, tokens)
}
