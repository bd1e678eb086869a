// Package menu is the interactive text menu. It reads one answer per line
// and drives the venue through the app package.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/log"
)

// Menu drives one interactive session.
type Menu struct {
	app    *app.App
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// New creates a menu reading answers from in and writing to out.
func New(a *app.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:    a,
		in:     bufio.NewReader(in),
		out:    out,
		styles: NewStyles(out),
	}
}

type action struct {
	label string
	run   func(ctx context.Context) error
}

type submenu struct {
	title   string
	actions []action
}

func (m *Menu) submenus() []submenu {
	return []submenu{
		{"Catálogo de Itens", m.catalogActions()},
		{"Estoque", m.stockActions()},
		{"Camarim", m.roomActions()},
		{"Artista", m.artistActions()},
		{"Lista de Pedidos", m.requestActions()},
		{"Lista de Compras", m.shoppingActions()},
		{"Histórico de Alterações", nil},
	}
}

// Run shows the main menu until the user picks 0 or input ends.
func (m *Menu) Run(ctx context.Context) error {
	subs := m.submenus()
	log.Info(log.CatMenu, "Menu started", "session", m.app.SessionID())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println(m.styles.Title.Render("____Menu de Principal___"))
		for i, s := range subs {
			m.println(fmt.Sprintf("%d. %s", i+1, s.title))
		}
		m.println("0. Finalizar")

		choice, err := m.readInt("\nDigite uma opção: ")
		m.println("")
		switch {
		case errors.Is(err, io.EOF):
			log.Info(log.CatMenu, "Input closed")
			return nil
		case err != nil:
			m.println("Digite uma opção válida...\n")
			continue
		case choice == 0:
			m.println("Encerrando o sistema...")
			log.Info(log.CatMenu, "Menu finished")
			return nil
		case choice < 0 || choice > len(subs):
			m.println("Digite uma opção válida...\n")
			continue
		}

		sub := subs[choice-1]
		log.Debug(log.CatMenu, "Menu opened", "menu", sub.title)
		if sub.actions == nil {
			m.showHistory()
			continue
		}
		if err := m.runSubmenu(ctx, sub); err != nil {
			if errors.Is(err, io.EOF) {
				log.Info(log.CatMenu, "Input closed")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) runSubmenu(ctx context.Context, sub submenu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println(m.styles.Title.Render("Menu de " + sub.title + ":"))
		for i, a := range sub.actions {
			m.println(m.styles.Option.Render(fmt.Sprintf("%d. %s", i+1, a.label)))
		}
		m.println("0. Retornar")

		choice, err := m.readInt("\nDigite uma opção: ")
		m.println("")
		if errors.Is(err, io.EOF) {
			return err
		}
		if err == nil && choice == 0 {
			m.println("\nRetornando ao menu principal...\n")
			return nil
		}
		if err != nil || choice < 0 || choice > len(sub.actions) {
			m.println("Digite uma opção válida...\n")
			continue
		}

		a := sub.actions[choice-1]
		log.Debug(log.CatMenu, "Action selected", "menu", sub.title, "action", a.label)
		if err := a.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			m.fail(err)
		}
	}
}

func (m *Menu) print(s string) {
	_, _ = io.WriteString(m.out, s)
}

func (m *Menu) println(s string) {
	m.print(s + "\n")
}

func (m *Menu) header(title string) {
	m.println(m.styles.Title.Render("\n=== " + title + " ==="))
}

func (m *Menu) ok(format string, args ...any) {
	m.println(m.styles.Success.Render("\n[OK] " + fmt.Sprintf(format, args...)))
}

func (m *Menu) warn(format string, args ...any) {
	m.println(m.styles.Warning.Render("\n[AVISO] " + fmt.Sprintf(format, args...)))
}

// fail reports an action error and logs it. The menu keeps running.
func (m *Menu) fail(err error) {
	log.Debug(log.CatMenu, "Action failed", "error", err)
	m.println(m.styles.Error.Render("\n[ERRO] " + err.Error()))
}

// show prints a cached report.
func (m *Menu) show(ctx context.Context, kind app.Domain) error {
	out, err := m.app.Report(ctx, kind, false)
	if err != nil {
		return err
	}
	m.println("")
	m.print(out)
	if !strings.HasSuffix(out, "\n\n") {
		m.println("")
	}
	return nil
}

func (m *Menu) showHistory() {
	m.header("Histórico de Alterações")
	history := m.app.History()
	if len(history) == 0 {
		m.println("Nenhuma alteração registrada.\n")
		return
	}
	for _, c := range history {
		m.println(c.String())
	}
	m.println("")
}
