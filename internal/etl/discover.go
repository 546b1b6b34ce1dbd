package etl

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// A ANP publica um arquivo por mês na página de dados abertos do ano corrente.
var snapshotRe = regexp.MustCompile(`precos-gasolina-etanol-(\d{2})\.csv$`)

// DiscoverLatest varre a página de listagem e devolve o link do snapshot
// mais recente de gasolina/etanol, resolvendo hrefs relativos.
func DiscoverLatest(listURL string) (string, error) {
	base, err := url.Parse(listURL)
	if err != nil {
		return "", fmt.Errorf("invalid listing url %s: %w", listURL, err)
	}

	resp, err := httpClient.Get(listURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", listURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("listing status %d for %s", resp.StatusCode, listURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	var best, bestMonth string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		m := snapshotRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		if m[1] > bestMonth {
			bestMonth = m[1]
			best = base.ResolveReference(ref).String()
		}
	})

	if best == "" {
		return "", fmt.Errorf("no gasoline/ethanol snapshot link found at %s", listURL)
	}
	return best, nil
}
