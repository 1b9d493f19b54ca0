package view

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/msomdec/swasth-ai/internal/domain"
)

// LoadMore describes the profile page's "load more" control.
type LoadMore struct {
	Total      int
	NextOffset int
}

// Remaining is the number of entries not yet shown.
func (l LoadMore) Remaining() int {
	return max(l.Total-l.NextOffset, 0)
}

func timestamp(t time.Time) string {
	return t.Local().Format("02 Jan 2006, 15:04")
}

func deleteButton(m *markup, id int64) {
	m.raw(`<button type="button" class="delete" onclick="deleteChat(event, `)
	m.num(id)
	m.raw(`)" aria-label="Delete">✕</button>`)
}

// sidebarItem is a recent conversation in the chat sidebar. The browser
// script replays it from the data attributes.
func sidebarItem(e domain.ChatEntry) templ.Component {
	return component(func(m *markup) {
		m.raw(`<li class="history-item" data-message="`)
		m.text(e.Message)
		m.raw(`" data-response="`)
		m.text(e.Response)
		m.raw(`" onclick="loadHistoryItem(this)"><span>`)
		m.text(e.Message)
		m.raw(`</span>`)
		deleteButton(m, e.ID)
		m.raw(`</li>`)
	})
}

func historyItem(e domain.ChatEntry) templ.Component {
	return component(func(m *markup) {
		m.raw(`<li class="history-item" id="history-`)
		m.num(e.ID)
		m.raw(`"><div class="history-meta"><time datetime="`)
		m.text(e.Timestamp.Format(time.RFC3339))
		m.raw(`">`)
		m.text(timestamp(e.Timestamp))
		m.raw(`</time><span class="lang">`)
		m.text(e.Language)
		m.raw(`</span>`)
		deleteButton(m, e.ID)
		m.raw(`</div><p class="history-message">`)
		m.text(e.Message)
		m.raw(`</p><div class="history-response">`)
		m.render(templ.Raw(RenderMarkdown(e.Response)))
		m.raw(`</div></li>`)
	})
}

// HistoryItemsFragment renders profile history rows for appending.
func HistoryItemsFragment(entries []domain.ChatEntry) templ.Component {
	return component(func(m *markup) {
		for _, e := range entries {
			m.render(historyItem(e))
		}
	})
}

func loadMore(l LoadMore) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="load-more">`)
		if n := l.Remaining(); n > 0 {
			m.raw(`<button type="button" data-on:click="@get('/profile/history?offset=`)
			m.raw(strconv.Itoa(l.NextOffset))
			m.raw(`')">Load more (`)
			m.raw(strconv.Itoa(n))
			m.raw(` remaining)</button>`)
		}
		m.raw(`</div>`)
	})
}

// LoadMoreFragment renders the #load-more element, empty once everything is
// shown.
func LoadMoreFragment(total, nextOffset int) templ.Component {
	return loadMore(LoadMore{Total: total, NextOffset: nextOffset})
}
