// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Doc is one candidate for fuzzy reranking, an id paired with the text the
// query is matched against.
type Doc struct {
	ID   string
	Text string
}

// RankedDoc is a reranked candidate with its partial-ratio score.
type RankedDoc struct {
	ID    string
	Text  string
	Score int
}

// Rerank scores every candidate against the query with the partial-ratio
// scorer and returns the candidates in descending score order. Ties keep the
// input order. Duplicate candidate texts are disambiguated by appending "-"
// sentinels before scoring so each candidate keeps its own identity.
func Rerank(query string, docs []Doc) []RankedDoc {
	seen := make(map[string]bool, len(docs))
	ranked := make([]RankedDoc, 0, len(docs))
	for _, doc := range docs {
		text := doc.Text
		for seen[text] {
			text += "-"
		}
		seen[text] = true
		ranked = append(ranked, RankedDoc{
			ID:    doc.ID,
			Text:  text,
			Score: fuzzy.PartialRatio(query, text),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// FuzzyMatch reports whether y is a permissive partial-ratio match for x.
func FuzzyMatch(x, y string) bool {
	return fuzzy.PartialRatio(x, y) >= 40
}

// FuzzyRatioMatch reports whether the plain ratio between x and y clears the
// low floor used for address matching.
func FuzzyRatioMatch(x, y string) bool {
	return fuzzy.Ratio(x, y) >= 20
}
