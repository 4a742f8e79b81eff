// Package e2e exercises the full load, retrieve, answer flow against a
// realistic multi-page study document.
package e2e

import (
	"fmt"
	"strings"
)

// CorpusPage is one page of the study document. Signature is a term that
// appears on this page and on no other, so lookups can assert that the right
// page came back.
type CorpusPage struct {
	Number    int
	Title     string
	Signature string
	Content   string
}

// QueryCase pairs a query with the page(s) that must appear in the results.
type QueryCase struct {
	Query         string
	ExpectedPages []int
	Description   string
}

// Corpus holds the study document pages and the query cases derived from them.
type Corpus struct {
	Pages        []CorpusPage
	LookupCases  []QueryCase
	TotalPages   int
	TotalQueries int
}

// BuildCorpus returns a study document where every page covers one topic and
// carries a unique signature term. Page contents are kept short enough that
// each page becomes a single chunk, which makes retrieval assertions exact.
func BuildCorpus() *Corpus {
	pages := buildPages()
	cases := buildLookupCases(pages)
	return &Corpus{
		Pages:        pages,
		LookupCases:  cases,
		TotalPages:   len(pages),
		TotalQueries: len(cases),
	}
}

func buildPages() []CorpusPage {
	topics := []struct {
		title     string
		signature string
		content   string
	}{
		{"Mitochondria", "mitochondria", "Mitochondria are the powerhouse of the cell. They convert nutrients into usable chemical energy."},
		{"Ribosomes", "ribosomes", "Ribosomes assemble proteins from amino acids. They read instructions carried by messenger RNA."},
		{"The Nucleus", "nucleus", "The nucleus stores the genetic material of the cell. It directs growth and reproduction."},
		{"Chloroplasts", "chloroplasts", "Chloroplasts capture light to make sugar. Photosynthesis happens inside their stacked membranes."},
		{"Cell Membrane", "phospholipid", "The outer membrane is a phospholipid bilayer. It controls what enters and leaves the cell."},
		{"Golgi Apparatus", "golgi", "The golgi apparatus packages proteins for transport. Vesicles carry the finished products away."},
		{"Lysosomes", "lysosomes", "Lysosomes digest worn out cell parts. Their acidic interior breaks waste into reusable pieces."},
		{"Cytoskeleton", "cytoskeleton", "The cytoskeleton gives the cell its shape. Filaments and tubules also move cargo around."},
		{"Chromosomes", "chromosomes", "Genetic information is stored in chromosomes. Each one is a long coiled strand of DNA."},
		{"Mitosis", "mitosis", "Mitosis divides one cell into two identical copies. The stages run from prophase to telophase."},
		{"Meiosis", "meiosis", "Meiosis produces reproductive cells with half the usual count. It shuffles traits between generations."},
		{"Osmosis", "osmosis", "Osmosis moves water across a membrane toward higher solute levels. No energy input is required."},
		{"Diffusion", "diffusion", "Diffusion spreads molecules from crowded regions to empty ones. Small gases cross membranes this way."},
		{"Enzymes", "enzymes", "Enzymes speed up chemical reactions without being consumed. Each one fits a specific substrate."},
		{"Protein Folding", "polypeptide", "A polypeptide folds into a working protein. Its final shape decides what the protein can do."},
		{"Prokaryotes", "prokaryotes", "Prokaryotes carry their genes in an open loop. Bacteria are the most familiar example."},
		{"Viruses", "viruses", "Viruses are not made of cells at all. They hijack host machinery to copy themselves."},
		{"Mutation", "mutation", "A mutation changes an organism slightly. Helpful changes spread through natural selection."},
		{"Ecosystems", "ecosystems", "Ecosystems link living things with their surroundings. Energy flows from producers to consumers."},
		{"Glycolysis", "glycolysis", "Glycolysis is the first step of cellular respiration. It splits glucose and releases a little energy."},
		{"Hormones", "hormones", "Hormones are chemical messengers in the body. Glands release them directly into the bloodstream."},
		{"Neurons", "neurons", "Neurons carry electrical signals through the body. Synapses pass the message from cell to cell."},
		{"Antibodies", "antibodies", "Antibodies tag invaders for destruction. White blood cells then clear the marked threats."},
		{"Vaccines", "vaccines", "Vaccines train the immune system in advance. A harmless sample prepares the body for the real thing."},
	}

	out := make([]CorpusPage, 0, len(topics))
	for i, t := range topics {
		out = append(out, CorpusPage{
			Number:    i + 1,
			Title:     t.title,
			Signature: t.signature,
			Content:   t.content,
		})
	}
	return out
}

// buildLookupCases returns one lookup case per page, querying its signature
// term and expecting that page in the results.
func buildLookupCases(pages []CorpusPage) []QueryCase {
	cases := make([]QueryCase, 0, len(pages))
	for _, p := range pages {
		cases = append(cases, QueryCase{
			Query:         p.Signature,
			ExpectedPages: []int{p.Number},
			Description:   fmt.Sprintf("term %q should return page %d", p.Signature, p.Number),
		})
	}
	return cases
}

// RenderText renders the corpus as plain text with form feeds between pages,
// the pagination the extractor expects.
func (c *Corpus) RenderText() string {
	contents := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		contents[i] = p.Content
	}
	return strings.Join(contents, "\f")
}

// containsTerm reports whether the page content contains the term,
// case-insensitively.
func containsTerm(p CorpusPage, term string) bool {
	return strings.Contains(strings.ToLower(p.Content), strings.ToLower(term))
}
