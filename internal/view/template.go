// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package view

import (
	"html/template"

	"github.com/mtreilly/arc-shelf/internal/library"
)

// row is one rendered book with its toggle button.
type row struct {
	Book  library.Book
	Query string
	Label string
	Class string
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"short": ShortID,
	"bookRow": func(b library.Book, query, label, class string) row {
		return row{Book: b, Query: query, Label: label, Class: class}
	},
}).Parse(pageHTML))

// ShortID abbreviates a book id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Library</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<style>
		* { box-sizing: border-box; margin: 0; padding: 0; }
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 640px; margin: 0 auto; padding: 20px; }
		h1 { margin-bottom: 20px; color: #2c3e50; }
		h2 { margin: 20px 0 10px; font-size: 18px; color: #2c3e50; }
		.search-box, .field { width: 100%; padding: 10px; font-size: 15px; border: 2px solid #ddd; border-radius: 4px; margin-bottom: 8px; }
		.search-box:focus, .field:focus { outline: none; border-color: #3498db; }
		.stats { display: flex; gap: 20px; margin-bottom: 20px; flex-wrap: wrap; }
		.stat { background: #f8f9fa; padding: 10px 20px; border-radius: 4px; }
		.stat-value { font-size: 24px; font-weight: bold; color: #3498db; }
		.stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
		.book { display: flex; justify-content: space-between; align-items: center; border: 1px solid #e0e0e0; border-radius: 8px; padding: 12px 16px; margin-bottom: 8px; }
		.book-title { font-weight: 600; }
		.book-meta { color: #666; font-size: 13px; }
		.actions form { display: inline; }
		button { padding: 6px 12px; border: none; border-radius: 4px; cursor: pointer; color: white; background: #3498db; }
		button.danger { background: #e74c3c; }
		button.muted { background: #95a5a6; }
		.empty { color: #666; padding: 10px 0; }
		details.edit { flex-basis: 100%; margin-top: 8px; }
		details.edit summary { cursor: pointer; color: #3498db; font-size: 13px; }
		details.edit .field { padding: 6px; font-size: 13px; margin-bottom: 4px; }
		.book { flex-wrap: wrap; }
		.error { background: #fee; color: #c33; padding: 10px; border-radius: 4px; margin-bottom: 10px; }
	</style>
</head>
<body>
	<h1>Library</h1>

	<div class="stats">
		<div class="stat"><div class="stat-value">{{.Stats.Total}}</div><div class="stat-label">Books</div></div>
		<div class="stat"><div class="stat-value">{{.Stats.Available}}</div><div class="stat-label">Available</div></div>
		<div class="stat"><div class="stat-value">{{.Stats.CheckedOut}}</div><div class="stat-label">Checked out</div></div>
	</div>

	<form method="get" action="/">
		<input type="text" class="search-box" name="q" value="{{.Query}}" placeholder="Search by title, author, genre or pages...">
	</form>

	<h2>Add a book</h2>
	{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
	<form method="post" action="/books">
		<input type="hidden" name="q" value="{{.Query}}">
		<input class="field" name="title" value="{{.Draft.Title}}" placeholder="Title">
		<input class="field" name="author" value="{{.Draft.Author}}" placeholder="Author">
		<input class="field" name="genre" value="{{.Draft.Genre}}" placeholder="Genre">
		<input class="field" name="year" value="{{.Draft.Year}}" placeholder="Year">
		<input class="field" name="pages" value="{{.Draft.Pages}}" placeholder="Pages">
		<button type="submit">Add</button>
	</form>

	<h2>Available</h2>
	{{range .Available}}{{template "book" (bookRow . $.Query "Check out" "")}}{{else}}<div class="empty">No books</div>{{end}}

	<h2>Checked out</h2>
	{{range .CheckedOut}}{{template "book" (bookRow . $.Query "Return" "muted")}}{{else}}<div class="empty">No books</div>{{end}}
</body>
</html>
{{define "book"}}
	<div class="book" id="book-{{.Book.ID}}">
		<div>
			<div class="book-title">{{.Book.Title}}</div>
			<div class="book-meta">{{.Book.Author}}{{if .Book.Genre}} · {{.Book.Genre}}{{end}}{{if .Book.Year}} · {{.Book.Year}}{{end}}{{if .Book.Pages}} · {{.Book.Pages}} p.{{end}} · #{{short .Book.ID}}</div>
		</div>
		<div class="actions">
			<form method="post" action="/books/{{.Book.ID}}/toggle"><input type="hidden" name="q" value="{{.Query}}"><button class="{{.Class}}" type="submit">{{.Label}}</button></form>
			<form method="post" action="/books/{{.Book.ID}}/delete"><input type="hidden" name="q" value="{{.Query}}"><button class="danger" type="submit">Remove</button></form>
		</div>
		<details class="edit">
			<summary>Edit</summary>
			<form method="post" action="/books/{{.Book.ID}}/edit">
				<input type="hidden" name="q" value="{{.Query}}">
				<input class="field" name="title" placeholder="{{.Book.Title}}">
				<input class="field" name="author" placeholder="{{.Book.Author}}">
				<input class="field" name="genre" placeholder="{{or .Book.Genre "Genre"}}">
				<input class="field" name="year" placeholder="{{or .Book.Year "Year"}}">
				<input class="field" name="pages" placeholder="{{or .Book.Pages "Pages"}}">
				<button type="submit">Save</button>
			</form>
		</details>
	</div>
{{end}}`
