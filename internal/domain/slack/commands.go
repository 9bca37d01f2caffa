package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart CommandType = "start"
	CmdToday CommandType = "today"
	CmdNext  CommandType = "nextclass"
	CmdWeek  CommandType = "week"
	CmdHelp  CommandType = "help"
)

type Command struct {
	Type CommandType
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "start", "subscribe":
		cmd.Type = CmdStart
	case "today":
		cmd.Type = CmdToday
	case "nextclass", "next":
		cmd.Type = CmdNext
	case "week":
		cmd.Type = CmdWeek
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*📚 Timetable Bot*

• ` + "`/timetable start`" + ` - Subscribe this channel to class reminders
• ` + "`/timetable today`" + ` - Today's classes
• ` + "`/timetable nextclass`" + ` - Next class
• ` + "`/timetable week`" + ` - Weekly timetable

Subscribed channels get a reminder about 10 minutes before each class starts.`
}
