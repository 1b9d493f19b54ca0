package view

import "github.com/a-h/templ"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// layout wraps its children in the page chrome. nav may be nil.
func layout(title string, nav templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw(`<!DOCTYPE html><html lang="en" data-theme="dark"><head>`)
		m.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(title)
		m.raw(` · Swasth AI</title>`)
		m.raw(`<link rel="stylesheet" href="/static/style.css">`)
		m.raw(`<script type="module" src="` + datastarScript + `"></script>`)
		m.raw(`<script defer src="/static/script.js"></script>`)
		m.raw(`</head><body><header class="topbar"><a class="brand" href="/">Swasth AI</a><nav>`)
		if nav != nil {
			m.render(nav)
		}
		m.raw(`<button id="theme-toggle" type="button" aria-label="Toggle theme">◐</button></nav></header><main>`)
		children := templ.GetChildren(m.ctx)
		m.ctx = templ.ClearChildren(m.ctx)
		m.render(children)
		m.raw(`</main></body></html>`)
	})
}

func page(title string, nav, content templ.Component) templ.Component {
	return withChildren(layout(title, nav), content)
}

func chatNav(username string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<a href="/profile">`)
		m.text(username)
		m.raw(`</a> <a href="/logout">Sign out</a>`)
	})
}

var profileNav = component(func(m *markup) {
	m.raw(`<a href="/">Chat</a> <a href="/logout">Sign out</a>`)
})

func flash(m *markup, msg string) {
	if msg == "" {
		return
	}
	m.raw(`<p class="flash" role="alert">`)
	m.text(msg)
	m.raw(`</p>`)
}
