// Package lang detects a document's language from script-specific
// character ranges and owns the per-language heading keyword tables.
package lang

import (
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
)

// Code is an ISO-639-1 language code.
type Code string

const (
	English  Code = "en"
	Japanese Code = "ja"
	Chinese  Code = "zh"
	Spanish  Code = "es"
	French   Code = "fr"
	German   Code = "de"
	Russian  Code = "ru"
	Greek    Code = "el"
	Arabic   Code = "ar"
)

// sampleSize is how many leading fragments feed language detection.
const sampleSize = 50

// Characteristic character sets, tested in fixed priority order. A
// sample mixing accented characters from several Latin languages
// resolves to whichever set is tested first; that ambiguity is part
// of the contract and must not be reordered away.
var scriptTests = []struct {
	code  Code
	chars string
}{
	{Japanese, "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん"},
	{Chinese, "你好世界中国日本美国英国法国德国"},
	{Spanish, "ñáéíóúüç"},
	{French, "àâäéèêëïîôöùûüÿç"},
	{German, "äöüß"},
	{Russian, "абвгдеёжзийклмнопрстуфхцчшщъыьэюя"},
	{Greek, "αβγδεζηθικλμνξοπρστυφχψω"},
	{Arabic, "ابتثجحخدذرزسشصضطظعغفقكلمنهوي"},
}

// Detect samples the first fragments and returns the first language
// whose characteristic set intersects the sample. Defaults to English.
func Detect(frags []fragment.TextFragment) Code {
	var sb strings.Builder
	for i, f := range frags {
		if i >= sampleSize {
			break
		}
		sb.WriteString(f.Text)
		sb.WriteByte(' ')
	}
	sample := strings.ToLower(sb.String())

	for _, st := range scriptTests {
		if strings.ContainsAny(sample, st.chars) {
			return st.code
		}
	}
	return English
}

// headingKeywords maps a language to terms that commonly appear in
// section headings. Read-only after init; shared across documents.
var headingKeywords = map[Code][]string{
	English: {
		"introduction", "overview", "background", "conclusion", "summary",
		"methodology", "approach", "results", "discussion", "references",
		"acknowledgement", "abstract", "contents", "objectives", "requirements",
		"structure", "chapter", "section", "appendix", "index",
	},
	Spanish: {
		"introducción", "resumen", "conclusión", "metodología", "resultados",
		"discusión", "referencias", "objetivos", "requisitos", "estructura",
		"contenido", "análisis", "investigación", "estudio", "capítulo",
		"sección", "apéndice", "índice",
	},
	French: {
		"introduction", "résumé", "conclusion", "méthodologie", "résultats",
		"discussion", "références", "objectifs", "exigences", "structure",
		"contenu", "analyse", "recherche", "étude", "chapitre",
		"section", "annexe", "index",
	},
	German: {
		"einleitung", "zusammenfassung", "schlussfolgerung", "methodik", "ergebnisse",
		"diskussion", "referenzen", "ziele", "anforderungen", "struktur",
		"inhalt", "analyse", "forschung", "studie", "kapitel",
		"abschnitt", "anhang", "verzeichnis",
	},
	Japanese: {
		"はじめに", "概要", "結論", "方法", "結果", "考察", "参考文献",
		"目的", "要件", "構造", "内容", "分析", "研究", "調査",
		"章", "節", "項", "目次", "序論", "本論", "まとめ",
	},
	Chinese: {
		"介绍", "概述", "结论", "方法", "结果", "讨论", "参考文献",
		"目标", "要求", "结构", "内容", "分析", "研究", "调查",
		"章", "节", "项", "目录", "引言", "正文", "总结",
	},
	Russian: {
		"введение", "резюме", "заключение", "методология", "результаты",
		"обсуждение", "ссылки", "цели", "требования", "структура",
		"содержание", "анализ", "исследование", "изучение", "глава",
		"раздел", "приложение", "оглавление",
	},
}

// Keywords returns the heading keyword table for a language. Languages
// without a dedicated table (Greek, Arabic) fall back to English.
func Keywords(code Code) []string {
	if kw, ok := headingKeywords[code]; ok {
		return kw
	}
	return headingKeywords[English]
}

// AllKeywords returns every table concatenated; the font-blind semantic
// signal scans all languages rather than just the detected one.
func AllKeywords() []string {
	var all []string
	for _, code := range []Code{English, Spanish, French, German, Japanese, Chinese, Russian} {
		all = append(all, headingKeywords[code]...)
	}
	return all
}
