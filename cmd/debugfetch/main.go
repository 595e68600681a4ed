package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jonathanwong05/NLP-Library/internal/extract"
	"github.com/jonathanwong05/NLP-Library/internal/fetch"
)

// debugfetch dumps the extracted text of one page so a selector can be
// checked before it goes into the corpus manifest:
//
//	debugfetch <url> [selector]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: debugfetch <url> [selector]")
		os.Exit(2)
	}
	url := os.Args[1]
	selector := ""
	if len(os.Args) > 2 {
		selector = os.Args[2]
	}

	client := &fetch.Client{
		HTTPClient:        &http.Client{},
		UserAgent:         "debugfetch/1.0",
		PerRequestTimeout: 20 * time.Second,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	body, err := client.Get(ctx, url)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fetch:", err)
		os.Exit(1)
	}

	if selector != "" {
		text := extract.ByClass(body, selector)
		if text == "" {
			fmt.Fprintln(os.Stderr, "no region matched selector", selector)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}
	doc := extract.Page(body)
	if doc.Title != "" {
		fmt.Println("#", doc.Title)
	}
	fmt.Println(doc.Text)
}
