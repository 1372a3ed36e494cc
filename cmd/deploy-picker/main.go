// Command deploy-picker walks through a deployment plan interactively
// and prints a styled summary of the choices.
package main

import (
	"fmt"
	"os"
	"strings"

	"enquire"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func questions() []enquire.Question {
	return []enquire.Question{
		enquire.Select("service").
			Message("Service to deploy").
			Choice("api").
			Choice("web").
			Choice("worker").
			DefaultSeparator().
			Choice("billing").
			Build(),

		enquire.MultiSelect("regions").
			Message("Target regions").
			Choices(
				enquire.CheckedChoice("eu-west-1"),
				enquire.NewChoice("eu-central-1"),
				enquire.NewChoice("us-east-1"),
				enquire.NewChoice("ap-southeast-2"),
			).
			Validate(func(items enquire.ListItems, _ *enquire.Answers) error {
				if len(items) == 0 {
					return fmt.Errorf("pick at least one region")
				}
				return nil
			}).
			Build(),

		enquire.OrderSelect("rollout").
			Message("Rollout order").
			WhenFn(func(a *enquire.Answers) bool {
				items, _ := a.Items("regions")
				return len(items) > 1
			}).
			Choice("canary").
			Choice("half").
			Choice("full").
			Build(),

		enquire.Int("replicas").
			Message("Replicas per region").
			Default(3).
			Validate(func(n int64, _ *enquire.Answers) error {
				if n < 1 || n > 100 {
					return fmt.Errorf("replicas must be between 1 and 100")
				}
				return nil
			}).
			Build(),

		enquire.Expand("strategy").
			Message("On failed health checks").
			Choice('r', "Roll back").
			Choice('p', "Pause rollout").
			Choice('c', "Continue anyway").
			Default('r').
			Build(),

		enquire.Confirm("proceed").
			Message("Start the deployment?").
			Default(false).
			Build(),
	}
}

func summary(a *enquire.Answers) string {
	var rows []string
	for name, ans := range a.All() {
		rows = append(rows, keyStyle.Render(name+": ")+valStyle.Render(ans.Display()))
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func main() {
	fmt.Println(titleStyle.Render("deploy-picker"))

	answers, err := enquire.Ask(enquire.Questions(questions()...))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(summary(answers))
	if !answers.Bool("proceed") {
		fmt.Println("aborted")
		os.Exit(1)
	}
	if item, ok := answers.Item("service"); ok {
		fmt.Println("deploying", item.Text)
	}
}
