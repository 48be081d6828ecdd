package notion

import (
	"strings"

	apperr "notion-agent/internal/errors"
)

// BlockType identifies a Notion block kind supported by the block agent.
type BlockType string

const (
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockParagraph        BlockType = "paragraph"
	BlockCode             BlockType = "code"
	BlockEmbed            BlockType = "embed"
	BlockVideo            BlockType = "video"
	BlockImage            BlockType = "image"
	BlockBookmark         BlockType = "bookmark"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockToDo             BlockType = "to_do"
)

// TextOpts carries the optional rich-text attributes the heading and
// paragraph tools accept.
type TextOpts struct {
	LinkURL string
	Color   string
}

// Block is a validated block specification. Exactly one type tag is
// active per instance; instances are only produced by the New*
// constructors, which reject incomplete parameters before any network
// call is made.
type Block struct {
	typ      BlockType
	text     string
	url      string
	language string
	checked  bool
	color    string
	linkURL  string
	caption  []string
}

func (b Block) Type() BlockType { return b.typ }

func NewHeading(typ BlockType, content string, opts *TextOpts) (Block, error) {
	switch typ {
	case BlockHeading1, BlockHeading2, BlockHeading3:
	default:
		return Block{}, apperr.NewInput("unsupported heading type %q", typ)
	}
	if strings.TrimSpace(content) == "" {
		return Block{}, apperr.NewInput("heading content must not be empty")
	}
	b := Block{typ: typ, text: content}
	b.applyTextOpts(opts)
	return b, nil
}

func NewParagraph(content string, opts *TextOpts) (Block, error) {
	if strings.TrimSpace(content) == "" {
		return Block{}, apperr.NewInput("paragraph content must not be empty")
	}
	b := Block{typ: BlockParagraph, text: content}
	b.applyTextOpts(opts)
	return b, nil
}

func NewCode(code, language string, caption []string) (Block, error) {
	if code == "" {
		return Block{}, apperr.NewInput("code content must not be empty")
	}
	if language == "" {
		language = "plain text"
	}
	return Block{typ: BlockCode, text: code, language: language, caption: caption}, nil
}

func NewEmbed(url string) (Block, error) {
	if strings.TrimSpace(url) == "" {
		return Block{}, apperr.NewInput("embed url must not be empty")
	}
	return Block{typ: BlockEmbed, url: url}, nil
}

// NewVideo wraps a YouTube link as an external video block. Non-YouTube
// URLs are rejected up front, the Notion API silently drops them otherwise.
func NewVideo(videoURL string) (Block, error) {
	if !IsYouTubeURL(videoURL) {
		return Block{}, apperr.NewInput("invalid YouTube video URL: %q", videoURL)
	}
	return Block{typ: BlockVideo, url: videoURL}, nil
}

func NewImage(imageURL string) (Block, error) {
	if strings.TrimSpace(imageURL) == "" {
		return Block{}, apperr.NewInput("image url must not be empty")
	}
	return Block{typ: BlockImage, url: imageURL}, nil
}

func NewBookmark(link, caption string) (Block, error) {
	if strings.TrimSpace(link) == "" {
		return Block{}, apperr.NewInput("bookmark url must not be empty")
	}
	b := Block{typ: BlockBookmark, url: link}
	if caption != "" {
		b.caption = []string{caption}
	}
	return b, nil
}

func NewNumberedListItem(text string) (Block, error) {
	return newListItem(BlockNumberedListItem, text)
}

func NewBulletedListItem(text string) (Block, error) {
	return newListItem(BlockBulletedListItem, text)
}

func NewToDo(text string, checked bool) (Block, error) {
	b, err := newListItem(BlockToDo, text)
	if err != nil {
		return Block{}, err
	}
	b.checked = checked
	return b, nil
}

func newListItem(typ BlockType, text string) (Block, error) {
	if strings.TrimSpace(text) == "" {
		return Block{}, apperr.NewInput("%s text must not be empty", typ)
	}
	return Block{typ: typ, text: text}, nil
}

// NumberedList splits comma-separated text into one numbered item per entry.
func NumberedList(text string) ([]Block, error) {
	return listBlocks(text, NewNumberedListItem)
}

// BulletedList splits comma-separated text into one bulleted item per entry.
func BulletedList(text string) ([]Block, error) {
	return listBlocks(text, NewBulletedListItem)
}

// ToDoList splits comma-separated text into one to-do item per entry,
// all sharing the same checked state.
func ToDoList(text string, checked bool) ([]Block, error) {
	return listBlocks(text, func(item string) (Block, error) {
		return NewToDo(item, checked)
	})
}

func listBlocks(text string, mk func(string) (Block, error)) ([]Block, error) {
	items, err := SplitListItems(text)
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		b, err := mk(item)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// SplitListItems splits list text on commas, trims each item and drops
// empty entries. All-empty input is an input error.
func SplitListItems(text string) ([]string, error) {
	var items []string
	for _, raw := range strings.Split(text, ",") {
		if item := strings.TrimSpace(raw); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, apperr.NewInput("list text contains no items: %q", text)
	}
	return items, nil
}

// IsYouTubeURL applies the same two checks the video tool documents:
// a youtube.com link pointing at a concrete watch?v= video.
func IsYouTubeURL(u string) bool {
	return strings.Contains(u, "youtube.com") && strings.Contains(u, "watch?v=")
}

func (b *Block) applyTextOpts(opts *TextOpts) {
	if opts == nil {
		return
	}
	b.linkURL = opts.LinkURL
	b.color = opts.Color
}

// Render produces the JSON body for this block exactly as the Notion
// append-children endpoint expects it.
func (b Block) Render() map[string]interface{} {
	body := map[string]interface{}{
		"object": "block",
		"type":   string(b.typ),
	}

	switch b.typ {
	case BlockHeading1, BlockHeading2, BlockHeading3, BlockParagraph:
		body[string(b.typ)] = map[string]interface{}{
			"rich_text": []map[string]interface{}{b.textObject()},
			"color":     b.colorOrDefault(),
		}
	case BlockCode:
		body["code"] = map[string]interface{}{
			"caption":   captionObjects(b.caption),
			"rich_text": []map[string]interface{}{b.textObject()},
			"language":  b.language,
		}
	case BlockEmbed:
		body["embed"] = map[string]interface{}{"url": b.url}
	case BlockVideo, BlockImage:
		body[string(b.typ)] = map[string]interface{}{
			"type":     "external",
			"external": map[string]interface{}{"url": b.url},
		}
	case BlockBookmark:
		bookmark := map[string]interface{}{
			"url":     b.url,
			"caption": captionObjects(b.caption),
		}
		body["bookmark"] = bookmark
	case BlockNumberedListItem, BlockBulletedListItem:
		body[string(b.typ)] = map[string]interface{}{
			"rich_text": []map[string]interface{}{b.textObject()},
		}
	case BlockToDo:
		body["to_do"] = map[string]interface{}{
			"rich_text": []map[string]interface{}{b.textObject()},
			"checked":   b.checked,
		}
	}

	return body
}

func (b Block) textObject() map[string]interface{} {
	text := map[string]interface{}{"content": b.text}
	if b.linkURL != "" {
		text["link"] = map[string]interface{}{"url": b.linkURL}
	}
	return map[string]interface{}{
		"type": "text",
		"text": text,
	}
}

func (b Block) colorOrDefault() string {
	if b.color == "" {
		return "default"
	}
	return b.color
}

func captionObjects(caption []string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(caption))
	for _, c := range caption {
		out = append(out, map[string]interface{}{
			"text": map[string]interface{}{"content": c},
		})
	}
	return out
}
