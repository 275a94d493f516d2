package main

import (
	"fmt"
	"log"
	"os"
	"slices"

	"article-stream/core/config"
	"article-stream/core/document"
)

// Quick check for schema drift. The record schema comes from the first
// document, so any document with a different flattened key set breaks
// batch uniformity. Prints the offenders field by field.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.Sources.APIResponseFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	root, err := document.DecodeObject(f)
	if err != nil {
		log.Fatal(err)
	}
	nested, err := document.Dig(root, "response", "docs")
	if err != nil {
		log.Fatal(err)
	}
	list, ok := nested.([]any)
	if !ok {
		log.Fatal("response.docs is not a list")
	}
	fmt.Printf("Loaded %d documents from %s\n", len(list), path)

	var baseline []string
	drift := 0
	for i, item := range list {
		obj, ok := item.(*document.Object)
		if !ok {
			fmt.Printf("doc %d: not an object\n", i)
			continue
		}
		keys := document.Flatten(obj).Keys()
		if baseline == nil {
			baseline = slices.Clone(keys)
			fmt.Printf("\nBaseline schema (%d fields):\n", len(baseline))
			for _, k := range baseline {
				fmt.Println("  " + k)
			}
			continue
		}
		if slices.Equal(keys, baseline) {
			continue
		}
		drift++
		fmt.Printf("\ndoc %d: %d fields (baseline %d)\n", i, len(keys), len(baseline))
		for _, k := range keys {
			if !slices.Contains(baseline, k) {
				fmt.Println("  extra: " + k)
			}
		}
		for _, k := range baseline {
			if !slices.Contains(keys, k) {
				fmt.Println("  missing: " + k)
			}
		}
	}

	fmt.Printf("\n%d of %d documents drift from the baseline schema\n", drift, len(list))
}
