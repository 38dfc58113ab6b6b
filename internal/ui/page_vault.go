package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/avolkov/passvault/internal/model"
)

func entryTable(entries []model.PasswordEntry) Node {
	if len(entries) == 0 {
		return P(Em(Text("Nothing here yet.")))
	}
	return Table(
		THead(Tr(
			Th(Text("Name")),
			Th(Text("Username")),
			Th(Text("URL")),
			Th(Text("Created")),
			Th(Text("")),
		)),
		TBody(Map(entries, func(e model.PasswordEntry) Node {
			return Tr(
				Td(A(Href("/password/"+e.ID.String()), Text(e.Name))),
				Td(Text(e.EntryUsername)),
				Td(Text(e.URL)),
				Td(Text(e.CreatedAt.Format("2006-01-02"))),
				Td(
					A(Href("/password/"+e.ID.String()+"/update"), Text("edit")),
					Text(" "),
					A(Href("/password/"+e.ID.String()+"/delete"), Text("delete")),
				),
			)
		})),
	)
}

func searchForm(term string) Node {
	return Form(
		Method("post"),
		Action("/search"),
		Role("search"),
		Input(Type("search"), Name("searchQuery"), Placeholder("exact entry name"), Value(term)),
		Button(Type("submit"), Text("Search")),
	)
}

func vaultPage(principal model.User, entries []model.PasswordEntry) Node {
	return page("Vault", principal,
		H1(Text("Your vault")),
		searchForm(""),
		entryTable(entries),
		P(A(Href("/create-password"), Text("Add an entry ->"))),
	)
}

func searchPage(principal model.User, term string, entries []model.PasswordEntry) Node {
	return page("Search", principal,
		H1(Text("Search results")),
		searchForm(term),
		P(Text("Entries named exactly "), Strong(Text(term)), Text(":")),
		entryTable(entries),
		P(A(Href("/vault"), Text("Back to vault"))),
	)
}

func entryDetailPage(principal model.User, e model.PasswordEntry) Node {
	return page(e.Name, principal,
		H1(Text(e.Name)),
		Table(TBody(
			Tr(Th(Text("Username")), Td(Text(e.EntryUsername))),
			Tr(Th(Text("Password")), Td(Code(Text(e.EntrySecret)))),
			Tr(Th(Text("URL")), Td(If(e.URL != "", A(Href(e.URL), Text(e.URL))))),
			Tr(Th(Text("Description")), Td(Text(e.Description))),
			Tr(Th(Text("Created")), Td(Text(e.CreatedAt.Format("2006-01-02 15:04")))),
		)),
		P(
			A(Href("/password/"+e.ID.String()+"/update"), Text("Edit")),
			Text(" · "),
			A(Href("/password/"+e.ID.String()+"/delete"), Text("Delete")),
			Text(" · "),
			A(Href("/vault"), Text("Back to vault")),
		),
	)
}

func entryForm(action string, e model.PasswordEntry, submitLabel string) Node {
	return Form(
		Method("post"),
		Action(action),
		Label(For("name"), Text("Name")),
		Input(Type("text"), ID("name"), Name("name"), Value(e.Name), Required()),
		Label(For("username"), Text("Username")),
		Input(Type("text"), ID("username"), Name("username"), Value(e.EntryUsername)),
		Label(For("password"), Text("Password")),
		Input(Type("text"), ID("password"), Name("password"), Value(e.EntrySecret), Required()),
		Label(For("description"), Text("Description")),
		Textarea(ID("description"), Name("description"), Text(e.Description)),
		Label(For("url"), Text("URL")),
		Input(Type("url"), ID("url"), Name("url"), Value(e.URL)),
		Button(Type("submit"), Text(submitLabel)),
	)
}

func createEntryPage(principal model.User) Node {
	return page("New entry", principal,
		H1(Text("New entry")),
		entryForm("/create-password", model.PasswordEntry{}, "Save"),
	)
}

func editEntryPage(principal model.User, e model.PasswordEntry) Node {
	return page("Edit "+e.Name, principal,
		H1(Text("Edit "+e.Name)),
		entryForm("/password/"+e.ID.String()+"/update", e, "Save changes"),
	)
}

func confirmDeletePage(principal model.User, e model.PasswordEntry) Node {
	return page("Delete "+e.Name, principal,
		H1(Text("Delete "+e.Name+"?")),
		P(Text("This removes the entry permanently. There is no undo.")),
		P(
			A(Href("/delpass/"+e.ID.String()), Role("button"), Text("Yes, delete")),
			Text(" "),
			A(Href("/password/"+e.ID.String()), Text("Cancel")),
		),
	)
}
