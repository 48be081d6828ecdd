package notion

import (
	"encoding/json"
	"testing"

	apperr "notion-agent/internal/errors"
)

func renderJSON(t *testing.T, b Block) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(b.Render())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func richTextContent(t *testing.T, body map[string]interface{}, typ string) string {
	t.Helper()
	inner, ok := body[typ].(map[string]interface{})
	if !ok {
		t.Fatalf("missing %q key in body: %v", typ, body)
	}
	rt, ok := inner["rich_text"].([]interface{})
	if !ok || len(rt) != 1 {
		t.Fatalf("bad rich_text for %q: %v", typ, inner)
	}
	first := rt[0].(map[string]interface{})
	if first["type"] != "text" {
		t.Fatalf("rich_text entry type: %v", first)
	}
	text := first["text"].(map[string]interface{})
	content, _ := text["content"].(string)
	return content
}

func TestHeadingRender(t *testing.T) {
	b, err := NewHeading(BlockHeading2, "Lacinato Kale", nil)
	if err != nil {
		t.Fatalf("new heading: %v", err)
	}
	body := renderJSON(t, b)
	if body["object"] != "block" || body["type"] != "heading_2" {
		t.Fatalf("envelope mismatch: %v", body)
	}
	if got := richTextContent(t, body, "heading_2"); got != "Lacinato Kale" {
		t.Fatalf("content: %q", got)
	}
	if body["heading_2"].(map[string]interface{})["color"] != "default" {
		t.Fatalf("color default not set: %v", body)
	}
}

func TestHeadingHyperlink(t *testing.T) {
	b, err := NewHeading(BlockHeading1, "Kale", &TextOpts{LinkURL: "https://en.wikipedia.org/wiki/Lacinato_kale"})
	if err != nil {
		t.Fatalf("new heading: %v", err)
	}
	body := renderJSON(t, b)
	rt := body["heading_1"].(map[string]interface{})["rich_text"].([]interface{})
	text := rt[0].(map[string]interface{})["text"].(map[string]interface{})
	link, ok := text["link"].(map[string]interface{})
	if !ok || link["url"] != "https://en.wikipedia.org/wiki/Lacinato_kale" {
		t.Fatalf("link not rendered: %v", text)
	}
}

func TestHeadingRejectsUnknownType(t *testing.T) {
	if _, err := NewHeading("heading_4", "x", nil); !apperr.IsInput(err) {
		t.Fatalf("want input error, got %v", err)
	}
	if _, err := NewHeading(BlockParagraph, "x", nil); !apperr.IsInput(err) {
		t.Fatalf("paragraph accepted as heading: %v", err)
	}
}

func TestParagraphRender(t *testing.T) {
	b, err := NewParagraph("San Francisco is a beautiful city", nil)
	if err != nil {
		t.Fatalf("new paragraph: %v", err)
	}
	body := renderJSON(t, b)
	if body["type"] != "paragraph" {
		t.Fatalf("type: %v", body["type"])
	}
	if got := richTextContent(t, body, "paragraph"); got != "San Francisco is a beautiful city" {
		t.Fatalf("content: %q", got)
	}
}

func TestCodeRender(t *testing.T) {
	b, err := NewCode("print('hi')", "python", []string{"greeting"})
	if err != nil {
		t.Fatalf("new code: %v", err)
	}
	body := renderJSON(t, b)
	code := body["code"].(map[string]interface{})
	if code["language"] != "python" {
		t.Fatalf("language: %v", code["language"])
	}
	caption := code["caption"].([]interface{})
	if len(caption) != 1 {
		t.Fatalf("caption: %v", caption)
	}
	capText := caption[0].(map[string]interface{})["text"].(map[string]interface{})
	if capText["content"] != "greeting" {
		t.Fatalf("caption content: %v", capText)
	}
	if got := richTextContent(t, body, "code"); got != "print('hi')" {
		t.Fatalf("content: %q", got)
	}
}

func TestCodeDefaultLanguage(t *testing.T) {
	b, err := NewCode("x = 1", "", nil)
	if err != nil {
		t.Fatalf("new code: %v", err)
	}
	body := renderJSON(t, b)
	if body["code"].(map[string]interface{})["language"] != "plain text" {
		t.Fatalf("default language not applied: %v", body)
	}
}

func TestExternalMediaRender(t *testing.T) {
	video, err := NewVideo("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("new video: %v", err)
	}
	body := renderJSON(t, video)
	v := body["video"].(map[string]interface{})
	if v["type"] != "external" {
		t.Fatalf("video type: %v", v)
	}
	if v["external"].(map[string]interface{})["url"] != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Fatalf("video url: %v", v)
	}

	image, err := NewImage("https://example.com/cat.png")
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	body = renderJSON(t, image)
	img := body["image"].(map[string]interface{})
	if img["type"] != "external" || img["external"].(map[string]interface{})["url"] != "https://example.com/cat.png" {
		t.Fatalf("image body: %v", img)
	}
}

func TestEmbedAndBookmarkRender(t *testing.T) {
	embed, err := NewEmbed("https://example.com/widget")
	if err != nil {
		t.Fatalf("new embed: %v", err)
	}
	body := renderJSON(t, embed)
	if body["embed"].(map[string]interface{})["url"] != "https://example.com/widget" {
		t.Fatalf("embed body: %v", body)
	}

	bm, err := NewBookmark("https://example.com", "home")
	if err != nil {
		t.Fatalf("new bookmark: %v", err)
	}
	body = renderJSON(t, bm)
	bookmark := body["bookmark"].(map[string]interface{})
	if bookmark["url"] != "https://example.com" {
		t.Fatalf("bookmark url: %v", bookmark)
	}
	caption := bookmark["caption"].([]interface{})
	if caption[0].(map[string]interface{})["text"].(map[string]interface{})["content"] != "home" {
		t.Fatalf("bookmark caption: %v", caption)
	}
}

func TestVideoRejectsNonYouTube(t *testing.T) {
	cases := []string{
		"https://vimeo.com/12345",
		"https://www.youtube.com/",
		"https://example.com/watch?v=abc",
	}
	for _, u := range cases {
		if _, err := NewVideo(u); !apperr.IsInput(err) {
			t.Fatalf("url %q: want input error, got %v", u, err)
		}
	}
}

func TestToDoRender(t *testing.T) {
	b, err := NewToDo("buy milk", true)
	if err != nil {
		t.Fatalf("new to_do: %v", err)
	}
	body := renderJSON(t, b)
	td := body["to_do"].(map[string]interface{})
	if td["checked"] != true {
		t.Fatalf("checked flag lost: %v", td)
	}
	if got := richTextContent(t, body, "to_do"); got != "buy milk" {
		t.Fatalf("content: %q", got)
	}
}

func TestListSplitting(t *testing.T) {
	blocks, err := NumberedList("Task 1, Task 2, Task 3")
	if err != nil {
		t.Fatalf("numbered list: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(blocks))
	}
	want := []string{"Task 1", "Task 2", "Task 3"}
	for i, b := range blocks {
		if b.Type() != BlockNumberedListItem {
			t.Fatalf("block %d type: %s", i, b.Type())
		}
		if got := richTextContent(t, renderJSON(t, b), "numbered_list_item"); got != want[i] {
			t.Fatalf("block %d content: %q", i, got)
		}
	}
}

func TestListSplittingDropsEmpties(t *testing.T) {
	items, err := SplitListItems(" a ,, b , ")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("items: %v", items)
	}

	if _, err := SplitListItems(" , , "); !apperr.IsInput(err) {
		t.Fatalf("want input error for empty list, got %v", err)
	}
}

func TestBulletedListType(t *testing.T) {
	blocks, err := BulletedList("one, two")
	if err != nil {
		t.Fatalf("bulleted list: %v", err)
	}
	for _, b := range blocks {
		if b.Type() != BlockBulletedListItem {
			t.Fatalf("type: %s", b.Type())
		}
	}
}

func TestEmptyContentRejected(t *testing.T) {
	if _, err := NewParagraph("   ", nil); !apperr.IsInput(err) {
		t.Fatalf("empty paragraph accepted: %v", err)
	}
	if _, err := NewHeading(BlockHeading1, "", nil); !apperr.IsInput(err) {
		t.Fatalf("empty heading accepted: %v", err)
	}
	if _, err := NewEmbed(""); !apperr.IsInput(err) {
		t.Fatalf("empty embed accepted: %v", err)
	}
	if _, err := NewCode("", "go", nil); !apperr.IsInput(err) {
		t.Fatalf("empty code accepted: %v", err)
	}
}
