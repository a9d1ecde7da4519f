package form

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"InvestorClassifier/internal/model"
)

// ErrAborted is returned when the user interrupts the form.
var ErrAborted = eris.New("form: aborted")

// LineReader is the subset of *readline.Instance the form needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewTerminal opens a readline session on the controlling terminal.
func NewTerminal() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, eris.Wrap(err, "form: open terminal")
	}
	return rl, nil
}

// Run asks for every profile field in turn. A blank answer takes the
// shown default; invalid answers are explained and asked again.
func Run(r LineReader, out io.Writer) (model.InvestorProfile, error) {
	p := &prompter{r: r, out: out, v: validator.New()}
	var profile model.InvestorProfile

	fmt.Fprintln(out, "Investor profile questionnaire (press Enter to accept the default)")

	fmt.Fprintln(out, "\nPersonal")
	age, err := p.askInt("Age", 28, "gte=18,lte=80")
	if err != nil {
		return profile, err
	}
	profile.Age = &age

	dependants, err := p.askInt("Dependants", 1, "gte=0,lte=20")
	if err != nil {
		return profile, err
	}
	profile.Dependants = &dependants

	fmt.Fprintln(out, "\nFinances")
	income, err := p.askInt64("Monthly income", 120_000, "gte=0")
	if err != nil {
		return profile, err
	}
	profile.MonthlyIncome = &income

	emi, err := p.askInt64("Monthly EMI", 15_000, "gte=0")
	if err != nil {
		return profile, err
	}
	profile.MonthlyEMI = &emi

	mode, err := p.askChoice("Emergency fund given as", []string{"months", "amount"}, "months")
	if err != nil {
		return profile, err
	}
	if mode == "months" {
		months, err := p.askFloat("Months of expenses covered", 4, "gte=0,lte=24")
		if err != nil {
			return profile, err
		}
		profile.EmergencyFundMonths = &months
	} else {
		amount, err := p.askInt64("Emergency fund amount", 300_000, "gte=0")
		if err != nil {
			return profile, err
		}
		profile.EmergencyFundAmount = &amount

		expenses, err := p.askInt64("Monthly expenses", 75_000, "gte=0")
		if err != nil {
			return profile, err
		}
		profile.MonthlyExpenses = &expenses
	}

	fmt.Fprintln(out, "\nInsurance")
	health, err := p.askBool("Health insurance", true)
	if err != nil {
		return profile, err
	}
	life, err := p.askBool("Life insurance", false)
	if err != nil {
		return profile, err
	}
	profile.Insurance = &model.Insurance{HasHealth: health, HasLife: life}

	fmt.Fprintln(out, "\nRisk")
	attitude, err := p.askInt("Comfort with market swings (1-5)", 3, "gte=1,lte=5")
	if err != nil {
		return profile, err
	}
	profile.RiskAttitude = &attitude

	knowledge, err := p.askInt("Investment knowledge (1-5)", 3, "gte=1,lte=5")
	if err != nil {
		return profile, err
	}
	profile.InvestmentKnowledge = &knowledge

	reactions := make([]string, len(model.DrawdownReactions))
	for i, d := range model.DrawdownReactions {
		reactions[i] = string(d)
	}
	drawdown, err := p.askChoice("If your portfolio fell 10%", reactions, string(model.DrawdownWait))
	if err != nil {
		return profile, err
	}
	profile.DrawdownReaction = model.DrawdownReaction(drawdown)

	fmt.Fprintln(out, "\nGoals")
	horizon, err := p.askInt("Time horizon in years", 5, "gte=1,lte=50")
	if err != nil {
		return profile, err
	}
	profile.TimeHorizon = &horizon

	ret, err := p.askFloat("Expected annual return %", 10, "gte=0,lte=50")
	if err != nil {
		return profile, err
	}
	profile.ReturnExpectation = &ret

	return profile, nil
}

type prompter struct {
	r   LineReader
	out io.Writer
	v   *validator.Validate
}

// ask reads one answer, returning def for a blank line.
func (p *prompter) ask(label, def string) (string, error) {
	p.r.SetPrompt(fmt.Sprintf("%s [%s]: ", label, def))
	line, err := p.r.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrAborted
		}
		if errors.Is(err, io.EOF) {
			return "", eris.Wrapf(err, "form: input ended at %q", label)
		}
		return "", eris.Wrapf(err, "form: read %q", label)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// check reports a rule violation to the user and returns false.
func (p *prompter) check(value any, rule string) bool {
	if err := p.v.Var(value, rule); err != nil {
		fmt.Fprintf(p.out, "  value out of range (%s)\n", strings.ReplaceAll(rule, ",", ", "))
		return false
	}
	return true
}

func (p *prompter) askInt(label string, def int, rule string) (int, error) {
	for {
		s, err := p.ask(label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "  please enter a whole number")
			continue
		}
		if p.check(n, rule) {
			return n, nil
		}
	}
}

func (p *prompter) askInt64(label string, def int64, rule string) (int64, error) {
	for {
		s, err := p.ask(label, strconv.FormatInt(def, 10))
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
		if err != nil {
			fmt.Fprintln(p.out, "  please enter a whole number")
			continue
		}
		if p.check(n, rule) {
			return n, nil
		}
	}
}

func (p *prompter) askFloat(label string, def float64, rule string) (float64, error) {
	for {
		s, err := p.ask(label, strconv.FormatFloat(def, 'f', -1, 64))
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintln(p.out, "  please enter a number")
			continue
		}
		if p.check(f, rule) {
			return f, nil
		}
	}
}

func (p *prompter) askBool(label string, def bool) (bool, error) {
	d := "n"
	if def {
		d = "y"
	}
	for {
		s, err := p.ask(label+" (y/n)", d)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "  please answer y or n")
	}
}

func (p *prompter) askChoice(label string, options []string, def string) (string, error) {
	for {
		s, err := p.ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, "/")), def)
		if err != nil {
			return "", err
		}
		s = strings.ToLower(s)
		for _, o := range options {
			if s == o {
				return o, nil
			}
		}
		fmt.Fprintf(p.out, "  choose one of: %s\n", strings.Join(options, ", "))
	}
}
