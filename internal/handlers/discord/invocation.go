package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ArgumentError is returned when a command argument is missing or malformed
type ArgumentError struct {
	Name    string
	Missing bool
}

func (e *ArgumentError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing argument %q", e.Name)
	}
	return fmt.Sprintf("invalid argument %q", e.Name)
}

// reply is a message sent back to the invoker
type reply struct {
	Content   string
	Embeds    []*discordgo.MessageEmbed
	Files     []*discordgo.File
	Ephemeral bool
}

// replier delivers replies for one invocation
type replier interface {
	deferReply() error
	send(r *reply) error
}

// Invocation is a single run of a command, from a slash command or a text message
type Invocation struct {
	GuildID   string
	ChannelID string
	User      *discordgo.User

	// Permissions are the invoker's permissions in the channel
	Permissions int64

	// Subcommand is the selected subcommand, empty when the command has none
	Subcommand string

	options map[string]any
	replier replier
}

// Has reports whether an option was given
func (inv *Invocation) Has(name string) bool {
	_, ok := inv.options[name]
	return ok
}

// String returns a string option, empty when absent
func (inv *Invocation) String(name string) string {
	switch v := inv.options[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int returns an integer option and whether it was given
func (inv *Invocation) Int(name string) (int64, bool, error) {
	switch v := inv.options[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, true, &ArgumentError{Name: name}
		}
		return n, true, nil
	default:
		return 0, true, &ArgumentError{Name: name}
	}
}

// UserID returns a user option as an ID, accepting mentions in text commands
func (inv *Invocation) UserID(name string) (string, error) {
	raw := strings.TrimSpace(inv.String(name))
	if raw == "" {
		return "", nil
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "<@"), ">")
	raw = strings.TrimPrefix(raw, "!")
	if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
		return "", &ArgumentError{Name: name}
	}
	return raw, nil
}

// HasPermission reports whether the invoker holds perm or is an administrator
func (inv *Invocation) HasPermission(perm int64) bool {
	return inv.Permissions&discordgo.PermissionAdministrator != 0 || inv.Permissions&perm != 0
}

// Defer acknowledges a slow command
func (inv *Invocation) Defer() error {
	return inv.replier.deferReply()
}

// Reply sends a text reply
func (inv *Invocation) Reply(content string) error {
	return inv.replier.send(&reply{Content: content})
}

// ReplyEphemeral sends a reply only the invoker can see, where supported
func (inv *Invocation) ReplyEphemeral(content string) error {
	return inv.replier.send(&reply{Content: content, Ephemeral: true})
}

// ReplyEmbed sends an embed reply
func (inv *Invocation) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return inv.replier.send(&reply{Embeds: []*discordgo.MessageEmbed{embed}})
}

// ReplyFile sends an embed with an attached file, the embed may show it
// through an attachment:// URL
func (inv *Invocation) ReplyFile(embed *discordgo.MessageEmbed, file *discordgo.File) error {
	return inv.replier.send(&reply{
		Embeds: []*discordgo.MessageEmbed{embed},
		Files:  []*discordgo.File{file},
	})
}

// newSlashInvocation builds an invocation from an application command interaction
func newSlashInvocation(s *discordgo.Session, i *discordgo.InteractionCreate) *Invocation {
	inv := &Invocation{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		options:   make(map[string]any),
		replier:   &interactionReplier{session: s, interaction: i.Interaction},
	}

	if i.Member != nil {
		inv.User = i.Member.User
		inv.Permissions = i.Member.Permissions
	} else {
		inv.User = i.User
	}

	options := i.ApplicationCommandData().Options
	if len(options) > 0 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		inv.Subcommand = options[0].Name
		options = options[0].Options
	}

	for _, opt := range options {
		inv.options[opt.Name] = opt.Value
	}

	return inv
}

// newTextInvocation builds an invocation from a prefixed message
func newTextInvocation(s *discordgo.Session, m *discordgo.MessageCreate, def *discordgo.ApplicationCommand, args []string, permissions int64) (*Invocation, error) {
	sub, options, err := parseTextArgs(def, args)
	if err != nil {
		return nil, err
	}

	return &Invocation{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		User:        m.Author,
		Permissions: permissions,
		Subcommand:  sub,
		options:     options,
		replier:     &messageReplier{session: s, message: m.Message},
	}, nil
}

// parseTextArgs maps positional words onto the command's options in order.
// A trailing string option takes the rest of the words. A leading word naming
// a subcommand selects it, otherwise the first subcommand is used.
func parseTextArgs(def *discordgo.ApplicationCommand, args []string) (string, map[string]any, error) {
	options := def.Options
	sub := ""

	if len(options) > 0 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		selected := options[0]
		if len(args) > 0 {
			for _, opt := range options {
				if strings.EqualFold(opt.Name, args[0]) {
					selected = opt
					args = args[1:]
					break
				}
			}
		}
		sub = selected.Name
		options = selected.Options
	}

	values := make(map[string]any, len(options))
	for idx, opt := range options {
		if idx >= len(args) {
			if opt.Required {
				return "", nil, &ArgumentError{Name: opt.Name, Missing: true}
			}
			continue
		}

		if idx == len(options)-1 && opt.Type == discordgo.ApplicationCommandOptionString {
			values[opt.Name] = strings.Join(args[idx:], " ")
			break
		}
		values[opt.Name] = args[idx]
	}

	return sub, values, nil
}

// interactionReplier answers an interaction, editing a deferred response first
type interactionReplier struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	deferred    bool
	responded   bool
}

func (r *interactionReplier) deferReply() error {
	if r.deferred || r.responded {
		return nil
	}
	r.deferred = true
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (r *interactionReplier) send(msg *reply) error {
	var flags discordgo.MessageFlags
	if msg.Ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	switch {
	case r.responded:
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: msg.Content,
			Embeds:  msg.Embeds,
			Files:   msg.Files,
			Flags:   flags,
		})
		return err

	case r.deferred:
		r.responded = true
		_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
			Content: &msg.Content,
			Embeds:  &msg.Embeds,
			Files:   msg.Files,
		})
		return err

	default:
		r.responded = true
		return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: msg.Content,
				Embeds:  msg.Embeds,
				Files:   msg.Files,
				Flags:   flags,
			},
		})
	}
}

// messageReplier answers a text command with a reply in the same channel
type messageReplier struct {
	session *discordgo.Session
	message *discordgo.Message
}

func (r *messageReplier) deferReply() error {
	return r.session.ChannelTyping(r.message.ChannelID)
}

func (r *messageReplier) send(msg *reply) error {
	_, err := r.session.ChannelMessageSendComplex(r.message.ChannelID, &discordgo.MessageSend{
		Content:   msg.Content,
		Embeds:    msg.Embeds,
		Files:     msg.Files,
		Reference: r.message.Reference(),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		},
	})
	return err
}
