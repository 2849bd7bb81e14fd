package view

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/sw33tLie/svcbook/internal/catalog"
)

// NoServices is shown on the provider page for an empty catalog.
const NoServices = "No services added yet."

// ProviderPage writes the provider dashboard listing every service as a card.
func ProviderPage(w io.Writer, services []catalog.ServiceEntry, theme string) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "")
	doc.AppendChild(root)

	head := element(atom.Head, "")
	root.AppendChild(head)
	head.AppendChild(withText(element(atom.Title, ""), "Provider Dashboard"))

	bodyClass := ""
	if theme == "light" {
		bodyClass = "light-theme"
	}
	body := element(atom.Body, bodyClass)
	root.AppendChild(body)

	container := element(atom.Div, "")
	container.Attr = append(container.Attr, html.Attribute{Key: "id", Val: "provider-services"})
	body.AppendChild(container)

	if len(services) == 0 {
		container.AppendChild(withText(element(atom.P, "empty"), NoServices))
	}
	for _, s := range services {
		container.AppendChild(serviceCard(s))
	}

	return html.Render(w, doc)
}

func serviceCard(s catalog.ServiceEntry) *html.Node {
	card := element(atom.Div, "service-card")
	table := element(atom.Table, "service-table")
	tbody := element(atom.Tbody, "")
	tr := element(atom.Tr, "")
	card.AppendChild(table)
	table.AppendChild(tbody)
	tbody.AppendChild(tr)

	nameCell := element(atom.Td, "col-name")
	nameCell.AppendChild(withText(element(atom.Strong, ""), s.Name))
	nameCell.AppendChild(element(atom.Br, ""))
	img := element(atom.Img, "")
	img.Attr = append(img.Attr,
		html.Attribute{Key: "src", Val: s.Image},
		html.Attribute{Key: "alt", Val: s.Name},
	)
	nameCell.AppendChild(img)
	tr.AppendChild(nameCell)

	priceCell := element(atom.Td, "col-price")
	priceCell.AppendChild(withText(element(atom.Strong, ""), s.Price+"SR"))
	tr.AppendChild(priceCell)

	tr.AppendChild(withText(element(atom.Td, "col-desc"), s.Description))
	return card
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
