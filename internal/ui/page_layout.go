package ui

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/avolkov/passvault/internal/model"
)

// page wraps content in the shared layout: head, nav, main.
func page(title string, principal model.User, content ...Node) Node {
	loggedIn := principal.Username != ""
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | PassVault")),
			Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css")),
		),
		Body(
			Nav(Class("container"),
				Ul(
					Li(A(Href("/"), Strong(Text("PassVault")))),
				),
				Ul(
					If(loggedIn, Group([]Node{
						Li(A(Href("/vault"), Text("Vault"))),
						Li(A(Href("/create-password"), Text("New entry"))),
						Li(A(Href("/profile/"+principal.Username), Text(principal.Username))),
						Li(A(Href("/logout"), Text("Log out"))),
					})),
					If(!loggedIn, Group([]Node{
						Li(A(Href("/login"), Text("Log in"))),
						Li(A(Href("/signup"), Text("Sign up"))),
					})),
				),
			),
			Main(Class("container"), Group(content)),
		),
	)
}

func indexPage(principal model.User) Node {
	return page("Home", principal,
		H1(Text("PassVault")),
		P(Text("A small personal vault for named passwords.")),
		If(principal.Username == "",
			P(
				A(Href("/signup"), Text("Sign up")),
				Text(" or "),
				A(Href("/login"), Text("log in")),
				Text(" to manage your vault."),
			),
		),
		If(principal.Username != "",
			P(A(Href("/vault"), Text("Open your vault ->"))),
		),
	)
}

func errorPage(principal model.User, status int, msg, detail string) Node {
	return page("Error", principal,
		H1(Text(fmt.Sprintf("%d", status))),
		P(Text(msg)),
		If(detail != "", Pre(Text(detail))),
		P(A(Href("/"), Text("Back to start"))),
	)
}
