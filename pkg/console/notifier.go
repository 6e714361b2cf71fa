package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
)

// Notifier imprime as notificações no terminal em vez de publicá-las no SNS.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a Notifier writing to out, or stdout when out is nil.
func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{out: out}
}

// Publish renderiza a notificação em uma caixa com o tópico como rodapé.
func (n *Notifier) Publish(ctx context.Context, topic string, notification entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	style := pterm.NewStyle(pterm.FgGreen)
	if notification.Outcome == entity.OutcomeFailure {
		style = pterm.NewStyle(pterm.FgRed)
	}

	box := pterm.DefaultBox.
		WithTitle(notification.Subject).
		WithBoxStyle(style).
		Sprint(notification.Body)

	_, err := fmt.Fprintf(n.out, "\n%s\n%s\n", box, pterm.Gray(fmt.Sprintf("topic: %s  run: %s", topic, notification.RunID)))
	return err
}
