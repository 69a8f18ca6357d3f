package slack

import (
	"encoding/json"
	"fmt"

	goslack "github.com/slack-go/slack"
)

// Field is one label/value pair rendered in a two-column section.
type Field struct {
	Label string
	Value string
}

// Button is a link button appended to the message.
type Button struct {
	Text     string
	URL      string
	Value    string
	ActionID string
}

// MessageInput is the structured notification content drivers assemble
// from a queue item's payload.
type MessageInput struct {
	Header  string
	Body    string
	Fields  []Field
	Buttons []Button
}

// BuildMessage composes Block Kit blocks for a notification. Every text
// object is clamped to Slack's length limits.
func BuildMessage(input MessageInput) []goslack.Block {
	var blocks []goslack.Block

	if input.Header != "" {
		blocks = append(blocks, goslack.NewHeaderBlock(
			goslack.NewTextBlockObject(goslack.PlainTextType, Truncate(input.Header, HeaderLimit), false, false),
		))
	}

	if input.Body != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, Truncate(input.Body, TextLimit), false, false),
			nil, nil,
		))
	}

	if len(input.Fields) > 0 {
		fields := make([]*goslack.TextBlockObject, 0, len(input.Fields))
		for _, f := range input.Fields {
			text := fmt.Sprintf("*%s:*\n%s", f.Label, f.Value)
			fields = append(fields, goslack.NewTextBlockObject(goslack.MarkdownType, Truncate(text, FieldLimit), false, false))
		}
		blocks = append(blocks, goslack.NewSectionBlock(nil, fields, nil))
	}

	if len(input.Buttons) > 0 {
		elements := make([]goslack.BlockElement, 0, len(input.Buttons))
		for _, b := range input.Buttons {
			btn := goslack.NewButtonBlockElement(
				b.ActionID,
				Truncate(b.Value, ButtonValueLimit),
				goslack.NewTextBlockObject(goslack.PlainTextType, Truncate(b.Text, ButtonTextLimit), false, false),
			)
			btn.URL = b.URL
			elements = append(elements, btn)
		}
		blocks = append(blocks, goslack.NewActionBlock("", elements...))
	}

	return blocks
}

// ParseBlocks decodes producer-supplied Block Kit JSON from a notification
// payload and applies the length limits to the result.
func ParseBlocks(raw []byte) ([]goslack.Block, error) {
	var parsed goslack.Blocks
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse blocks: %w", err)
	}
	LimitBlocks(parsed.BlockSet)
	return parsed.BlockSet, nil
}

// LimitBlocks clamps the text objects of already-built blocks in place.
// Unknown block types pass through untouched.
func LimitBlocks(blocks []goslack.Block) {
	for _, b := range blocks {
		switch blk := b.(type) {
		case *goslack.HeaderBlock:
			if blk.Text != nil {
				blk.Text.Text = Truncate(blk.Text.Text, HeaderLimit)
			}
		case *goslack.SectionBlock:
			if blk.Text != nil {
				blk.Text.Text = Truncate(blk.Text.Text, TextLimit)
			}
			for _, f := range blk.Fields {
				if f != nil {
					f.Text = Truncate(f.Text, FieldLimit)
				}
			}
		case *goslack.ActionBlock:
			if blk.Elements == nil {
				continue
			}
			for _, el := range blk.Elements.ElementSet {
				btn, ok := el.(*goslack.ButtonBlockElement)
				if !ok {
					continue
				}
				if btn.Text != nil {
					btn.Text.Text = Truncate(btn.Text.Text, ButtonTextLimit)
				}
				btn.Value = Truncate(btn.Value, ButtonValueLimit)
			}
		}
	}
}
