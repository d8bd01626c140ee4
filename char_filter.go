package facetfish

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueにマッピングする
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.ReplaceAll(s, k, v)
	}
	return s
}

// 全角英数字・全角スペースを半角に、半角カナを全角に揃える
type WidthCharFilter struct{}

func NewWidthCharFilter() *WidthCharFilter {
	return &WidthCharFilter{}
}

func (c *WidthCharFilter) Filter(s string) string {
	return norm.NFKC.String(s)
}
