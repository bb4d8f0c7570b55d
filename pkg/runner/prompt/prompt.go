// Package prompt prints a writing prompt.
package prompt

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/printers"
	"tableflip.dev/writersblock/pkg/prompt"
)

type Prompt struct {
	// Service supplies the configured theme when Theme is empty. It may be nil.
	Service *app.Service
	Theme   string
	All     bool
	Rand    *rand.Rand
	JSON    bool
}

func (p *Prompt) Do(ctx context.Context) error {
	theme, err := p.theme(ctx)
	if err != nil {
		return err
	}

	if p.All {
		list := prompt.ForTheme(theme)
		if p.JSON {
			return printers.JSON(nil, list)
		}
		pp := printers.PrettyPrint{}
		pp.NewLine()
		pp.Title(string(theme))
		for _, s := range list {
			_, _ = fmt.Fprintf(color.Output, "  • %s\n", s)
		}
		pp.NewLine()
		return nil
	}

	r := p.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := prompt.Random(theme, r)
	if p.JSON {
		return printers.JSON(nil, map[string]string{"theme": string(theme), "prompt": s})
	}
	_, _ = color.New(color.Italic).Fprintln(color.Output, wordwrap.String(s, 80))
	return nil
}

func (p *Prompt) theme(ctx context.Context) (prompt.Theme, error) {
	if p.Theme != "" {
		return prompt.ParseTheme(p.Theme)
	}
	if p.Service == nil {
		return prompt.ThemeAll, nil
	}
	prefs, err := p.Service.Settings(ctx)
	if err != nil {
		return prompt.ThemeAll, err
	}
	return prefs.PromptTheme, nil
}
