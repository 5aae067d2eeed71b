package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	result := a.sessions.Login(ctx, email, password)
	if !result.Success {
		if result.Message == "" {
			result.Message = "Error al iniciar sesión"
		}
		fmt.Fprintln(a.out, result.Message)
		return
	}

	fmt.Fprintln(a.out, "Sesión iniciada. Escribe 'admin' para entrar al panel.")
}

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fullName, err := GetSimpleText(a.reader, "Nombre completo", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	result := a.sessions.Register(ctx, email, password, fullName)
	if !result.Success {
		fmt.Fprintln(a.out, result.Message)
		return
	}

	fmt.Fprintln(a.out, "Cuenta creada. Sesión iniciada.")
}

func (a *App) Logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Sesión cerrada.")
}

func (a *App) whoami() {
	user := a.sessions.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "No has iniciado sesión.")
		return
	}
	fmt.Fprintf(a.out, "%s", user.Email)
	if user.Role != "" {
		fmt.Fprintf(a.out, " (%s)", user.Role)
	}
	fmt.Fprintln(a.out)
}
