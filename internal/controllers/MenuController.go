package controllers

import (
	"bufio"
	"errors"
	"eternalquest/internal/models"
	"eternalquest/internal/providers"
	"eternalquest/internal/services"
	"eternalquest/internal/structures"
	"fmt"
	"github.com/spf13/cast"
	"io"
	"strings"
)

const menuText = `Menu Options:
  1. Create New Goal
  2. Record Event
  3. List Goals
  4. Save Goals
  5. Load Goals
  6. Quit
Select a choice from the menu: `

const goalTypeText = `The types of Goals are:
  1. Simple Goal
  2. Eternal Goal
  3. Checklist Goal
Which type of goal would you like to create? `

// MenuController drives the ledger from a line-oriented console.
type MenuController struct {
	service  services.LedgerServiceInterface
	logger   providers.Logger
	in       *bufio.Scanner
	out      io.Writer
	filePath string
}

func NewMenuController(service services.LedgerServiceInterface, conf *structures.Config, console *structures.Console, logger providers.Logger) *MenuController {
	return &MenuController{
		service:  service,
		logger:   logger,
		in:       bufio.NewScanner(console.In),
		out:      console.Out,
		filePath: conf.Persistence.FilePath,
	}
}

// Run shows the menu until the user quits or input ends.
func (mc *MenuController) Run() error {
	for {
		mc.printf("\nYou have %d points (level %d).\n\n", mc.service.Score(), mc.service.Level())

		choice, err := mc.prompt(menuText)
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = mc.createGoal()
		case "2":
			err = mc.recordEvent()
		case "3":
			mc.listGoals()
		case "4":
			err = mc.save()
		case "5":
			err = mc.load()
		case "6", "q", "quit":
			return nil
		default:
			mc.printf("Invalid option %q.\n", choice)
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (mc *MenuController) createGoal() error {
	kindInput, err := mc.prompt(goalTypeText)
	if err != nil {
		return err
	}
	kind, err := models.ParseKind(kindInput)
	if err != nil {
		mc.printf("Unknown goal type %q.\n", kindInput)
		return nil
	}

	name, err := mc.prompt("What is the name of your goal? ")
	if err != nil {
		return err
	}
	points, ok, err := mc.promptInt("What is the amount of points associated with this goal? ")
	if err != nil || !ok {
		return err
	}

	var goal *models.Goal
	switch kind {
	case models.KindSimple:
		goal, err = models.NewSimpleGoal(name, points)
	case models.KindEternal:
		goal, err = models.NewEternalGoal(name, points)
	case models.KindChecklist:
		target, ok, perr := mc.promptInt("How many times does this goal need to be accomplished for a bonus? ")
		if perr != nil || !ok {
			return perr
		}
		bonus, ok, perr := mc.promptInt("What is the bonus for accomplishing it that many times? ")
		if perr != nil || !ok {
			return perr
		}
		goal, err = models.NewChecklistGoal(name, points, target, bonus)
	}
	if err != nil {
		mc.printf("Could not create goal: %s\n", err)
		return nil
	}

	if err = mc.service.AddGoal(goal); err != nil {
		mc.printf("Could not create goal: %s\n", err)
		return nil
	}
	mc.printf("Goal %q created.\n", goal.Name)
	return nil
}

func (mc *MenuController) recordEvent() error {
	goals := mc.service.Goals()
	if len(goals) == 0 {
		mc.printf("There are no goals yet.\n")
		return nil
	}

	mc.printf("The goals are:\n")
	for i, g := range goals {
		mc.printf("  %d. %s\n", i+1, g.Name)
	}

	answer, err := mc.prompt("Which goal did you accomplish? ")
	if err != nil {
		return err
	}

	points, err := mc.service.RecordEvent(resolveGoalName(goals, answer))
	if err != nil {
		if errors.Is(err, models.ErrGoalNotFound) {
			mc.printf("Goal not found.\n")
			return nil
		}
		return err
	}

	mc.printf("Congratulations! You have earned %d points!\n", points)
	mc.printf("You now have %d points.\n", mc.service.Score())
	return nil
}

// resolveGoalName accepts a goal name or its position in the list. An exact
// name wins over a position.
func resolveGoalName(goals []models.Goal, answer string) string {
	for _, g := range goals {
		if g.Name == answer {
			return answer
		}
	}
	if n, err := parseWholeNumber(answer); err == nil && n >= 1 && n <= len(goals) {
		return goals[n-1].Name
	}
	return answer
}

func (mc *MenuController) listGoals() {
	lines := mc.service.DisplayGoals()
	if len(lines) == 0 {
		mc.printf("There are no goals yet.\n")
		return
	}
	mc.printf("The goals are:\n")
	for i, line := range lines {
		mc.printf("%d. %s\n", i+1, line)
	}
}

func (mc *MenuController) save() error {
	path, err := mc.promptPath()
	if err != nil {
		return err
	}
	if err = mc.service.Save(path); err != nil {
		mc.printf("Could not save goals: %s\n", err)
		return nil
	}
	mc.printf("Goals saved to %s.\n", path)
	return nil
}

func (mc *MenuController) load() error {
	path, err := mc.promptPath()
	if err != nil {
		return err
	}
	err = mc.service.Load(path)
	switch {
	case errors.Is(err, models.ErrLedgerNotFound):
		mc.printf("No saved goals found at %s.\n", path)
	case err != nil:
		mc.printf("Could not load goals: %s\n", err)
	default:
		mc.printf("Loaded %d goals for %s.\n", len(mc.service.Goals()), mc.service.UserName())
	}
	return nil
}

func (mc *MenuController) promptPath() (string, error) {
	path, err := mc.prompt(fmt.Sprintf("What is the filename? [%s] ", mc.filePath))
	if err != nil {
		return "", err
	}
	if path == "" {
		return mc.filePath, nil
	}
	return path, nil
}

// promptInt reports ok=false after telling the user the input was not a
// whole number.
func (mc *MenuController) promptInt(text string) (int, bool, error) {
	answer, err := mc.prompt(text)
	if err != nil {
		return 0, false, err
	}
	n, err := parseWholeNumber(answer)
	if err != nil {
		mc.logger.Debugf(providers.TypeMenu, "Rejected number %q: %s", answer, err)
		mc.printf("%q is not a whole number.\n", answer)
		return 0, false, nil
	}
	return n, true, nil
}

// parseWholeNumber reads a signed base-10 integer. Leading zeros are
// ignored, so "010" is ten rather than an octal literal.
func parseWholeNumber(s string) (int, error) {
	sign, digits := "", s
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%q is not a base-10 number", s)
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return cast.ToIntE(sign + digits)
}

func (mc *MenuController) prompt(text string) (string, error) {
	mc.printf("%s", text)
	if !mc.in.Scan() {
		if err := mc.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(mc.in.Text()), nil
}

func (mc *MenuController) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(mc.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
