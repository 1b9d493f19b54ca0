package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/swasth-ai/internal/domain"
)

// LoginData feeds the combined sign-in and registration page.
type LoginData struct {
	Flash string
	Email string
}

// HomeData feeds the chat page.
type HomeData struct {
	Username string
	Recent   []domain.ChatEntry
}

// ProfileData feeds the profile page.
type ProfileData struct {
	Username string
	Email    string
	Flash    string
	Entries  []domain.ChatEntry
	LoadMore LoadMore
}

func LoginPage(data LoginData) templ.Component {
	return page("Sign in", nil, component(func(m *markup) {
		m.raw(`<section class="auth">`)
		flash(m, data.Flash)
		m.raw(`<div class="auth-forms">`)
		m.raw(`<form method="post" action="/login" class="card"><h2>Sign in</h2>`)
		m.raw(`<label>Email <input type="email" name="email" value="`)
		m.text(data.Email)
		m.raw(`" required></label>`)
		m.raw(`<label>Password <input type="password" name="password" required></label>`)
		m.raw(`<button type="submit">Sign in</button></form>`)
		m.raw(`<form method="post" action="/register" class="card"><h2>Create an account</h2>`)
		m.raw(`<label>Username <input type="text" name="username" required></label>`)
		m.raw(`<label>Email <input type="email" name="email" required></label>`)
		m.raw(`<label>Password <input type="password" name="password" minlength="8" maxlength="72" required></label>`)
		m.raw(`<button type="submit">Register</button></form>`)
		m.raw(`</div></section>`)
	}))
}

func HomePage(data HomeData) templ.Component {
	return page("Chat", chatNav(data.Username), component(func(m *markup) {
		m.raw(`<div class="chat-layout"><aside id="chat-sidebar" class="sidebar">`)
		m.raw(`<button type="button" onclick="startNewChat()">New chat</button><h3>Recent</h3><ul class="history-list">`)
		for _, e := range data.Recent {
			m.render(sidebarItem(e))
		}
		if len(data.Recent) == 0 {
			m.raw(`<li class="empty">No conversations yet.</li>`)
		}
		m.raw(`</ul></aside>`)
		m.raw(`<div id="chat-overlay" class="overlay" onclick="toggleSidebar()"></div>`)
		m.raw(`<section class="chat"><div id="welcome-screen"><h1>Namaste, `)
		m.text(data.Username)
		m.raw(`</h1><p>Ask about common health concerns. Swasth AI gives general guidance, not a diagnosis.</p>`)
		m.raw(`<div class="quick">`)
		m.raw(`<button type="button" onclick="sendQuickMessage('I have a fever')">Fever</button>`)
		m.raw(`<button type="button" onclick="sendQuickMessage('I have a headache')">Headache</button>`)
		m.raw(`<button type="button" onclick="sendQuickMessage('What are covid symptoms?')">Covid</button>`)
		m.raw(`</div></div>`)
		m.raw(`<div id="chat-messages" class="messages" hidden></div>`)
		m.raw(`<div class="composer"><select id="language-select" aria-label="Language">`)
		for _, l := range Languages {
			m.raw(`<option value="`)
			m.text(l.Code)
			m.raw(`">`)
			m.text(l.Name)
			m.raw(`</option>`)
		}
		m.raw(`</select>`)
		m.raw(`<textarea id="chat-input" rows="1" placeholder="Describe your symptoms..."></textarea>`)
		m.raw(`<button id="send-btn" type="button">Send</button>`)
		m.raw(`</div></section></div>`)
	}))
}

func ProfilePage(data ProfileData) templ.Component {
	return page("Profile", profileNav, component(func(m *markup) {
		m.raw(`<section class="profile">`)
		flash(m, data.Flash)
		m.raw(`<div class="profile-forms">`)
		m.raw(`<form method="post" action="/update_profile" class="card"><h2>Profile</h2>`)
		m.raw(`<label>Username <input type="text" name="username" value="`)
		m.text(data.Username)
		m.raw(`" required></label>`)
		m.raw(`<label>Email <input type="email" name="email" value="`)
		m.text(data.Email)
		m.raw(`" required></label>`)
		m.raw(`<button type="submit">Save</button></form>`)
		m.raw(`<form method="post" action="/change_password" class="card"><h2>Change password</h2>`)
		m.raw(`<label>Current password <input type="password" name="current_password" required></label>`)
		m.raw(`<label>New password <input type="password" name="new_password" minlength="8" maxlength="72" required></label>`)
		m.raw(`<label>Confirm new password <input type="password" name="confirm_password" minlength="8" maxlength="72" required></label>`)
		m.raw(`<button type="submit">Change password</button></form>`)
		m.raw(`</div><h2>History <small>(`)
		m.raw(strconv.Itoa(data.LoadMore.Total))
		m.raw(`)</small></h2><ul id="profile-history" class="history-list">`)
		m.render(HistoryItemsFragment(data.Entries))
		m.raw(`</ul>`)
		m.render(loadMore(data.LoadMore))
		m.raw(`</section>`)
	}))
}

// ErrorPage renders a minimal page for errors on HTML routes.
func ErrorPage(status int, message string) templ.Component {
	return page("Error", nil, component(func(m *markup) {
		m.raw(`<section class="error"><h1>`)
		m.raw(strconv.Itoa(status))
		m.raw(`</h1><p>`)
		m.text(message)
		m.raw(`</p><a href="/">Back to chat</a></section>`)
	}))
}
