package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/avolkov/passvault/internal/model"
)

func credentialsForm(action, submitLabel string) Node {
	return Form(
		Method("post"),
		Action(action),
		Label(For("username"), Text("Username")),
		Input(Type("text"), ID("username"), Name("username"), Required()),
		Label(For("password"), Text("Password")),
		Input(Type("password"), ID("password"), Name("password"), Required()),
		Button(Type("submit"), Text(submitLabel)),
	)
}

func loginPage(errMsg string) Node {
	return page("Log in", model.User{},
		H1(Text("Log in")),
		If(errMsg != "", P(Class("error"), Text(errMsg))),
		credentialsForm("/login", "Log in"),
		P(Text("No account yet? "), A(Href("/signup"), Text("Sign up"))),
	)
}

func signupPage(errMsg string) Node {
	return page("Sign up", model.User{},
		H1(Text("Sign up")),
		If(errMsg != "", P(Class("error"), Text(errMsg))),
		credentialsForm("/signup", "Create account"),
		P(Text("Already registered? "), A(Href("/login"), Text("Log in"))),
	)
}
