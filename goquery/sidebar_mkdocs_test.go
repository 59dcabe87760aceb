package goquery_test

import (
	"testing"

	"github.com/fwojciec/docmirror/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkdocsSidebarHTML = `<!DOCTYPE html>
<html>
<body data-md-color-scheme="default">
<nav class="md-nav md-nav--primary" data-md-component="navigation">
<ul class="md-nav__list">
	<li class="md-nav__item md-nav__item--nested">
		<label class="md-nav__link" for="__nav_1">Getting started</label>
		<nav class="md-nav">
			<ul class="md-nav__list">
				<li class="md-nav__item"><a class="md-nav__link" href="/docs/overview/">Overview</a></li>
				<li class="md-nav__item"><a class="md-nav__link" href="/docs/quickstart/">Quickstart</a></li>
			</ul>
		</nav>
	</li>
	<li class="md-nav__item">
		<a class="md-nav__link" href="/docs/changelog/">Changelog</a>
	</li>
</ul>
</nav>
</body>
</html>`

func TestMkDocsExtractor_ExtractCategories(t *testing.T) {
	t.Parallel()

	e := goquery.NewMkDocsExtractor()

	cats, err := e.ExtractCategories(mkdocsSidebarHTML, "https://example.com")
	require.NoError(t, err)
	require.Len(t, cats, 1)

	assert.Equal(t, "Getting started", cats[0].Title)
	assert.Equal(t, "getting-started", cats[0].Slug)
	require.Len(t, cats[0].Files, 2)
	assert.Equal(t, "overview", cats[0].Files[0].Slug)
	assert.Equal(t, "https://example.com/docs/overview/", cats[0].Files[0].Href)
	assert.Equal(t, "Quickstart", cats[0].Files[1].Title)
}
