package commands

import (
	"github.com/boreq/ircstream/irc/protocol"
)

// jsonMessage is the representation of a message used by the decode and
// encode commands. Tags are a list so that their order is preserved.
type jsonMessage struct {
	Tags    []jsonTag   `json:"tags,omitempty"`
	Sender  *jsonSender `json:"sender,omitempty"`
	Command string      `json:"command"`
	Params  []string    `json:"params,omitempty"`
}

type jsonTag struct {
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"` // nil for flags
}

type jsonSender struct {
	Nick string `json:"nick"`
	User string `json:"user,omitempty"`
	Host string `json:"host,omitempty"`
}

func toJSON(msg *protocol.Message) jsonMessage {
	rv := jsonMessage{
		Command: msg.Command,
		Params:  msg.Params,
	}
	for _, tag := range msg.Tags.All() {
		t := jsonTag{Key: tag.Key}
		if !tag.Flag {
			value := tag.Value
			t.Value = &value
		}
		rv.Tags = append(rv.Tags, t)
	}
	if msg.Sender != nil {
		rv.Sender = &jsonSender{
			Nick: msg.Sender.Nick,
			User: msg.Sender.User,
			Host: msg.Sender.Host,
		}
	}
	return rv
}

func fromJSON(m jsonMessage) *protocol.Message {
	rv := &protocol.Message{
		Command: m.Command,
		Params:  m.Params,
	}
	for _, tag := range m.Tags {
		if tag.Value == nil {
			rv.Tags.SetFlag(tag.Key)
		} else {
			rv.Tags.Set(tag.Key, *tag.Value)
		}
	}
	if m.Sender != nil {
		rv.Sender = &protocol.Sender{
			Nick: m.Sender.Nick,
			User: m.Sender.User,
			Host: m.Sender.Host,
		}
	}
	return rv
}
