package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/services/roller"
)

const (
	optionDice  = "dice"
	optionSides = "sides"
)

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	rollerService roller.Service
	logger        *zap.Logger
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(rollerService roller.Service, logger *zap.Logger) *DiceCommand {
	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Roll dice and see rolling statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll some dice",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionDice,
							Description: fmt.Sprintf("Number of dice (%d-%d, default 1)", roller.MinDice, roller.MaxDice),
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        optionSides,
							Description: fmt.Sprintf("Sides per die (%d-%d, default 6)", roller.MinSides, roller.MaxSides),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent rolls",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Clear the roll history",
				},
			},
		},
		rollerService: rollerService,
		logger:        logger,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	subcommand := data.Options[0]

	switch subcommand.Name {
	case "roll":
		return c.handleRoll(ctx, s, i, subcommand.Options)
	case "history":
		return c.handleHistory(ctx, s, i)
	case "clear":
		return c.handleClear(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

func (c *DiceCommand) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	output, err := c.rollerService.RollDice(ctx, rollInputFromOptions(options))
	if err != nil {
		var validationErr *roller.ValidationError
		if errors.As(err, &validationErr) {
			return RespondWithEphemeralMessage(s, i, validationErr.Message)
		}

		c.logger.Error("error rolling dice", zap.Error(err))
		return RespondWithError(s, i, unexpectedErrorMessage)
	}

	return RespondWithEmbed(s, i,
		renderRollTitle(output.Roll),
		renderResults(output.Roll.Results),
		renderStatisticsFields(output.Statistics),
	)
}

func (c *DiceCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.rollerService.GetHistory(ctx, &roller.GetHistoryInput{})
	if err != nil {
		c.logger.Error("error getting history", zap.Error(err))
		return RespondWithError(s, i, unexpectedErrorMessage)
	}

	return RespondWithEmbed(s, i,
		"Recent rolls",
		renderHistory(output.Rolls),
		renderStatisticsFields(output.Statistics),
	)
}

func (c *DiceCommand) handleClear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, err := c.rollerService.ClearHistory(ctx, &roller.ClearHistoryInput{}); err != nil {
		c.logger.Error("error clearing history", zap.Error(err))
		return RespondWithError(s, i, unexpectedErrorMessage)
	}

	return RespondWithEmbed(s, i, "History cleared", "", nil)
}

// rollInputFromOptions reads the roll subcommand options, defaulting to 1d6
func rollInputFromOptions(options []*discordgo.ApplicationCommandInteractionDataOption) *roller.RollDiceInput {
	input := &roller.RollDiceInput{
		DiceCount: 1,
		SideCount: 6,
	}

	for _, opt := range options {
		if opt.Type != discordgo.ApplicationCommandOptionInteger {
			continue
		}
		switch opt.Name {
		case optionDice:
			input.DiceCount = int(opt.IntValue())
		case optionSides:
			input.SideCount = int(opt.IntValue())
		}
	}

	return input
}
