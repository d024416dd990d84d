package discord

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pearl/internal/services/images"
)

// userLookup resolves a user by ID, within a guild when one is given
type userLookup interface {
	User(guildID, userID string) (*discordgo.User, error)
}

// imageCommands builds the avatar and image effect command handlers
type imageCommands struct {
	images images.Service
	users  userLookup
}

func (c *imageCommands) handlers() []CommandHandler {
	handlers := []CommandHandler{
		&command{
			BaseCommand: BaseCommand{
				Name:        "avatar",
				Description: "Show a member's avatar",
				Aliases:     []string{"av", "pfp"},
				Options:     []*discordgo.ApplicationCommandOption{userOption("member", "Whose avatar to show")},
			},
			handle: c.avatar,
		},
	}

	single := []struct {
		effect      images.Effect
		description string
		aliases     []string
	}{
		{effect: images.EffectWasted, description: "Wasted"},
		{effect: images.EffectPixel, description: "Pixelate an avatar", aliases: []string{"pixelate"}},
		{effect: images.EffectTriggered, description: "Triggered"},
		{effect: images.EffectInvert, description: "Invert an avatar's colours"},
		{effect: images.EffectSobel, description: "Run edge detection on an avatar"},
		{effect: images.EffectJail, description: "Put someone behind bars"},
	}
	for _, fx := range single {
		handlers = append(handlers, &command{
			BaseCommand: BaseCommand{
				Name:        string(fx.effect),
				Description: fx.description,
				Aliases:     fx.aliases,
				Options:     []*discordgo.ApplicationCommandOption{userOption("member", "Whose avatar to use")},
			},
			handle: c.transform(fx.effect),
		})
	}

	member := userOption("member", "Who is asking")
	member.Required = true
	handlers = append(handlers, &command{
		BaseCommand: BaseCommand{
			Name:        string(images.EffectWhyAreYouGay),
			Description: "Why are you gay?",
			Aliases:     []string{"whyareyougae"},
			Options: []*discordgo.ApplicationCommandOption{
				member,
				userOption("author", "Who is being asked"),
			},
		},
		handle: c.transform(images.EffectWhyAreYouGay),
	})

	return handlers
}

// memberOrSelf resolves a user option, falling back to the invoker
func (c *imageCommands) memberOrSelf(inv *Invocation, option string) (*discordgo.User, error) {
	userID, err := inv.UserID(option)
	if err != nil {
		return nil, err
	}
	if userID == "" || userID == inv.User.ID {
		return inv.User, nil
	}
	return c.users.User(inv.GuildID, userID)
}

func (c *imageCommands) avatar(_ context.Context, inv *Invocation) error {
	user, err := c.memberOrSelf(inv, "member")
	if err != nil {
		return err
	}
	return inv.ReplyEmbed(renderAvatar(user))
}

func (c *imageCommands) transform(effect images.Effect) func(context.Context, *Invocation) error {
	return func(ctx context.Context, inv *Invocation) error {
		member, err := c.memberOrSelf(inv, "member")
		if err != nil {
			return err
		}
		input := &images.TransformInput{Effect: effect, URL: staticAvatarURL(member)}

		if effect.TwoImages() {
			author, err := c.memberOrSelf(inv, "author")
			if err != nil {
				return err
			}
			input.SecondURL = staticAvatarURL(author)
		}

		if err := inv.Defer(); err != nil {
			return err
		}

		out, err := c.images.Transform(ctx, input)
		if err != nil {
			return err
		}

		filename := fmt.Sprintf("%s.%s", effect, out.Extension)
		return inv.ReplyFile(renderImage("", "attachment://"+filename), &discordgo.File{
			Name:        filename,
			ContentType: out.ContentType,
			Reader:      bytes.NewReader(out.Data),
		})
	}
}
