package query

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

func newXMLDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	return doc, doc.CreateElement(root)
}

func writeXML(doc *etree.Document, output io.Writer) error {
	doc.Indent(2)

	_, err := doc.WriteTo(output)

	return err
}

func optionsAsXML(entries []Entry) *etree.Document {
	doc, root := newXMLDocument("options")

	for _, e := range entries {
		el := root.CreateElement("option")
		el.CreateAttr("name", e.Name)
		el.CreateAttr("warning", strconv.FormatBool(e.Warning))
		el.CreateAttr("default-on", strconv.FormatBool(e.DefaultOn))

		if e.AliasOf != "" {
			el.CreateAttr("alias-of", e.AliasOf)
		}

		if e.Position != "" {
			el.CreateAttr("position", e.Position)
		}

		props := el.CreateElement("properties")
		for _, p := range e.Properties {
			pe := props.CreateElement("property")
			pe.CreateAttr("key", p.Key)

			if p.Payload != nil {
				pe.SetText(*p.Payload)
			}
		}

		nameList(el, "enabled-by", "condition", e.EnabledBy)
		nameList(el, "enables", "option", e.Enables)
		nameList(el, "aliases", "option", e.Aliases)
		nameList(el, "langs", "lang", e.Langs)

		if e.Help != "" {
			el.CreateElement("help").SetText(e.Help)
		}
	}

	return doc
}

func nameList(parent *etree.Element, tag, itemTag string, items []string) {
	if len(items) == 0 {
		return
	}

	list := parent.CreateElement(tag)
	for _, item := range items {
		list.CreateElement(itemTag).SetText(item)
	}
}

func listAsXML(title string, items []string) *etree.Document {
	doc, root := newXMLDocument("list")
	if title != "" {
		root.CreateAttr("title", title)
	}

	for _, item := range items {
		root.CreateElement("item").SetText(item)
	}

	return doc
}

func enumsAsXML(entries []EnumEntry) *etree.Document {
	doc, root := newXMLDocument("enums")

	for _, e := range entries {
		el := root.CreateElement("enum")
		el.CreateAttr("name", e.Name)
		el.CreateAttr("type", e.Type)

		for _, v := range e.Values {
			ve := el.CreateElement("value")
			ve.CreateAttr("string", v.String)
			ve.SetText(v.Value)
		}
	}

	return doc
}

func summaryAsXML(rows [][2]string) *etree.Document {
	doc, root := newXMLDocument("summary")

	for _, r := range rows {
		root.CreateAttr(strings.ReplaceAll(r[0], " ", "-"), r[1])
	}

	return doc
}
