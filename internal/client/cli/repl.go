package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Perfil(ctx context.Context) error
	Passwd(ctx context.Context) error
	Recover(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Historico(ctx context.Context) error
	Deposito(ctx context.Context) error
	Resgate(ctx context.Context) error
	Relatorios(ctx context.Context) error
	Notificacoes(ctx context.Context) error
	AdminDashboard(ctx context.Context) error
	Investidores(ctx context.Context) error
	GestaoAportes(ctx context.Context) error
	GestaoResgates(ctx context.Context) error
	GestaoRelatorios(ctx context.Context) error
	Rentabilidade(ctx context.Context) error
	Auditoria(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the portal client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every command is routed through the guard inside the App methods, so an
// anonymous user asking for "dashboard" is redirected to the login view and
// a non-admin asking for "auditoria" lands on the investor dashboard.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("prime> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "perfil":
			_ = a.Perfil(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "historico":
			_ = a.Historico(ctx)

		case "deposito":
			_ = a.Deposito(ctx)

		case "resgate":
			_ = a.Resgate(ctx)

		case "relatorios":
			_ = a.Relatorios(ctx)

		case "n", "notificacoes":
			_ = a.Notificacoes(ctx)

		case "admin":
			_ = a.AdminDashboard(ctx)

		case "investidores":
			_ = a.Investidores(ctx)

		case "gaportes":
			_ = a.GestaoAportes(ctx)

		case "gresgates":
			_ = a.GestaoResgates(ctx)

		case "grelatorios":
			_ = a.GestaoRelatorios(ctx)

		case "rentabilidade":
			_ = a.Rentabilidade(ctx)

		case "auditoria":
			_ = a.Auditoria(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Comandos: login, recover, help, exit")
		return
	}
	printlnFn("Comandos: (d)ashboard, historico, deposito, resgate, relatorios, (n)otificacoes, perfil, passwd, whoami, logout, exit")
	if a.isAdmin() {
		printlnFn("Admin: admin, investidores, gaportes, gresgates, grelatorios, rentabilidade, auditoria")
	}
}
