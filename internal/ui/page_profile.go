package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/avolkov/passvault/internal/model"
)

func profilePage(principal, profile model.User) Node {
	return page(profile.Username, principal,
		H1(Text(profile.Username)),
		P(Text("Member since "+profile.CreatedAt.Format("January 2006"))),
	)
}

func profileNotFoundPage(principal model.User, username string) Node {
	return page("Profile", principal,
		H1(Text("No such user")),
		P(Text("There is no profile for "), Strong(Text(username)), Text(".")),
	)
}
