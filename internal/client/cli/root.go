package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.sessions.CurrentUser(); user != nil {
		s = user.Email + " "
	}
	s = s + a.config.Backend
	return fmt.Sprintf("(%s)", s)
}

// Root runs the read–eval–print loop. It reads a line, parses the first
// token as the command, and dispatches. Command handlers log and print their
// own errors; the loop stays resilient and exits on EOF or exit/quit.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "gestor-ia (escribe 'help' para ver los comandos)")

	for {
		fmt.Fprintf(a.out, "gestor %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "catalog", "c":
			a.browse(ctx)

		case "search":
			a.search(ctx, strings.Join(args, " "))

		case "category":
			a.selectCategory(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso: show <id>")
				continue
			}
			a.show(ctx, args[0])

		case "sell":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso: sell <id>")
				continue
			}
			a.sell(ctx, args[0])

		case "login":
			a.Login(ctx)

		case "register":
			a.Register(ctx)

		case "logout":
			a.Logout(ctx)

		case "whoami":
			a.whoami()

		case "admin", "a":
			a.withAuth(func() { a.adminList(ctx) })

		case "stats":
			a.withAuth(func() { a.stats(ctx) })

		case "create":
			a.withAuth(func() { a.create(ctx) })

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso: edit <id>")
				continue
			}
			a.withAuth(func() { a.edit(ctx, args[0]) })

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso: delete <id>")
				continue
			}
			a.withAuth(func() { a.delete(ctx, args[0]) })

		case "toggle":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso: toggle <id>")
				continue
			}
			a.withAuth(func() { a.toggle(ctx, args[0]) })

		case "refresh":
			a.withAuth(func() { a.refresh(ctx) })

		case "exit", "quit":
			fmt.Fprintln(a.out, "¡Hasta pronto!")
			return

		default:
			fmt.Fprintln(a.out, "Comando desconocido:", cmd)
		}
	}
}

// withAuth gates the admin surface on the session store, the single source
// of truth for the authenticated state.
func (a *App) withAuth(fn func()) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Acceso privado: inicia sesión con 'login'.")
		return
	}
	fn()
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Catálogo público: catalog, search <texto>, category <nombre>, show <id>, sell <id>")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Panel admin: admin, stats, create, edit <id>, delete <id>, toggle <id>, refresh, logout")
	} else {
		fmt.Fprintln(a.out, "Sesión: login, register")
	}
	fmt.Fprintln(a.out, "Otros: whoami, help, exit")
}
