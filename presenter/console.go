// Package presenter renders interactor results on a terminal.
package presenter

import (
	"fmt"
	"io"
	"lost-found/domain"
	"lost-found/services"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04:05"

// Console writes chat and message lists as tables. Errors are written on
// their own line, in red when colours are enabled.
type Console struct {
	out     io.Writer
	colours bool
}

func NewConsole(out io.Writer, colours bool) *Console {
	return &Console{out: out, colours: colours}
}

func (c *Console) PresentChats(result services.ChatListResult) {
	if result.Error != "" {
		c.PresentError(result.Error)
		return
	}
	if len(result.Chats) == 0 {
		c.notice("No chats yet")
		return
	}
	table := c.table([]string{"Chat", "Participants", "Created", "Blocked"})
	for _, chat := range result.Chats {
		table.Append([]string{
			chat.ID,
			strings.Join(chat.Participants, ", "),
			formatTime(chat.CreatedAt),
			strconv.FormatBool(chat.Blocked),
		})
	}
	table.Render()
}

func (c *Console) PresentMessages(result services.MessageListResult) {
	if result.Error != "" {
		c.PresentError(result.Error)
		return
	}
	if result.Chat != nil {
		header := fmt.Sprintf("%s with %s", result.Chat.ID, strings.Join(result.Chat.Participants, ", "))
		if result.Chat.Blocked {
			header += " (blocked)"
		}
		c.notice(header)
	}
	if len(result.Messages) == 0 {
		c.notice("No messages yet")
		return
	}
	table := c.table([]string{"Sent", "From", "Message"})
	for _, message := range result.Messages {
		table.Append([]string{formatTime(message.SentAt), message.Sender, message.Content})
	}
	table.Render()
}

func (c *Console) PresentPosts(posts []domain.Post) {
	if len(posts) == 0 {
		c.notice("No posts found")
		return
	}
	table := c.table([]string{"Post", "Kind", "Title", "Location", "Author", "Resolved"})
	for _, post := range posts {
		table.Append([]string{
			post.ID,
			string(post.Kind),
			post.Title,
			post.Location,
			post.Author,
			strconv.FormatBool(post.Resolved),
		})
	}
	table.Render()
}

func (c *Console) PresentError(message string) {
	if c.colours {
		message = color.New(color.FgRed, color.OpBold).Render(message)
	}
	_, _ = fmt.Fprintln(c.out, message)
}

// PresentInfo writes a plain status line, in green when colours are enabled.
func (c *Console) PresentInfo(message string) {
	if c.colours {
		message = color.New(color.FgGreen).Render(message)
	}
	_, _ = fmt.Fprintln(c.out, message)
}

func (c *Console) notice(message string) {
	if c.colours {
		message = color.New(color.FgCyan).Render(message)
	}
	_, _ = fmt.Fprintln(c.out, message)
}

func (c *Console) table(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
