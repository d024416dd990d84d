package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/services/animals"
	"github.com/KirkDiggler/pearl/internal/services/currency"
	"github.com/KirkDiggler/pearl/internal/services/settings"
)

// currencyName is how balances are labelled in replies
const currencyName = "pearls"

// utilityCommands builds the currency, settings and fun command handlers
type utilityCommands struct {
	currency  currency.Service
	settings  settings.Service
	animals   animals.Service
	clock     clock.Clock
	startedAt time.Time
}

func (c *utilityCommands) handlers() []CommandHandler {
	return []CommandHandler{
		&command{
			BaseCommand: BaseCommand{
				Name:        "bank",
				Description: "Show a bank balance",
				Aliases:     []string{"balance", "bal"},
				Options:     []*discordgo.ApplicationCommandOption{userOption("member", "Whose balance to show")},
			},
			handle: c.bank,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "daily",
				Description: "Claim your daily pearls",
				Options:     []*discordgo.ApplicationCommandOption{userOption("member", "Give the pearls to someone else")},
			},
			handle: c.daily,
		},
		&command{
			BaseCommand: BaseCommand{Name: "cat", Description: "Show a random cat", Aliases: []string{"randomcat"}},
			handle:      c.cat,
		},
		&command{
			BaseCommand: BaseCommand{Name: "dog", Description: "Show a random dog", Aliases: []string{"randomdog"}},
			handle:      c.dog,
		},
		&command{
			BaseCommand: BaseCommand{Name: "uptime", Description: "Show how long the bot has been running"},
			handle:      c.uptime,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "prefix",
				Description: "Show or change the text command prefix",
				Options: []*discordgo.ApplicationCommandOption{
					subcommand("show", "Show the current prefix"),
					subcommand("set", "Change the prefix", stringOption("prefix", "The new prefix", true)),
				},
			},
			handle: c.prefix,
		},
	}
}

func (c *utilityCommands) bank(ctx context.Context, inv *Invocation) error {
	userID, err := inv.UserID("member")
	if err != nil {
		return err
	}
	if userID == "" {
		userID = inv.User.ID
	}

	out, err := c.currency.Bank(ctx, &currency.BankInput{UserID: userID})
	if err != nil {
		return err
	}

	whose := "You have"
	if userID != inv.User.ID {
		whose = mention(userID) + " has"
	}
	return inv.Reply(fmt.Sprintf("%s **%s** %s.", whose, humanize.Comma(out.Balance), currencyName))
}

func (c *utilityCommands) daily(ctx context.Context, inv *Invocation) error {
	recipientID, err := inv.UserID("member")
	if err != nil {
		return err
	}

	out, err := c.currency.Daily(ctx, &currency.DailyInput{
		GuildID:     inv.GuildID,
		UserID:      inv.User.ID,
		RecipientID: recipientID,
	})
	if err != nil {
		return err
	}

	next := humanize.RelTime(out.NextClaim, c.clock.Now(), "ago", "from now")
	if out.RecipientID != inv.User.ID {
		return inv.Reply(fmt.Sprintf("You gave **%s** %s to %s. Claim again %s.",
			humanize.Comma(out.Amount), currencyName, mention(out.RecipientID), next))
	}
	return inv.Reply(fmt.Sprintf("You received **%s** %s, you now have **%s**. Claim again %s.",
		humanize.Comma(out.Amount), currencyName, humanize.Comma(out.Balance), next))
}

func (c *utilityCommands) cat(ctx context.Context, inv *Invocation) error {
	out, err := c.animals.RandomCat(ctx)
	if err != nil {
		return err
	}
	return inv.ReplyEmbed(renderImage("🐱 Meow", out.URL))
}

func (c *utilityCommands) dog(ctx context.Context, inv *Invocation) error {
	out, err := c.animals.RandomDog(ctx)
	if err != nil {
		return err
	}
	return inv.ReplyEmbed(renderImage("🐶 Woof", out.URL))
}

func (c *utilityCommands) uptime(_ context.Context, inv *Invocation) error {
	running := humanize.RelTime(c.startedAt, c.clock.Now(), "", "")
	return inv.Reply(fmt.Sprintf("I've been up for **%s**.", strings.TrimSpace(running)))
}

func (c *utilityCommands) prefix(ctx context.Context, inv *Invocation) error {
	if inv.Subcommand != "set" {
		out, err := c.settings.GetPrefix(ctx, &settings.GetPrefixInput{GuildID: inv.GuildID})
		if err != nil {
			return err
		}
		return inv.Reply(fmt.Sprintf("The prefix here is `%s`.", out.Prefix))
	}

	out, err := c.settings.SetPrefix(ctx, &settings.SetPrefixInput{
		GuildID:        inv.GuildID,
		Prefix:         inv.String("prefix"),
		CanManageGuild: inv.HasPermission(discordgo.PermissionManageServer),
	})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("Prefix changed from `%s` to `%s`.", out.Previous, out.Prefix))
}
