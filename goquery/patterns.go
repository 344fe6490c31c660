package goquery

import "regexp"

// Heuristic patterns for isolating article content on jw.org pages.
var (
	// containerKeywordPattern matches class/id values of divs that hold
	// editorial content.
	containerKeywordPattern = regexp.MustCompile(`(?i)(article|content|pub|body)`)

	// playerClassPattern matches class/id values of media player chrome.
	playerClassPattern = regexp.MustCompile(`(?i)(player|audio|video|jwplayer|vjs|media|play)`)

	// metadataClassPattern matches class/id values of publication
	// metadata blocks: issue banners, related content, share bars.
	metadataClassPattern = regexp.MustCompile(`(?i)(publication|issue|magazine|context|related|footer|language|promo|share)`)

	// issuePattern matches magazine issue codes like "wp24".
	issuePattern = regexp.MustCompile(`(?i)\bwp\d{2}\b`)

	// cmsImagePattern and akamaiImagePattern match image URLs on the two
	// CDNs jw.org serves article art from.
	cmsImagePattern    = regexp.MustCompile(`(?i)https?://cms-imgp\.jw-cdn\.org/img/p/[^\s"'<>]+`)
	akamaiImagePattern = regexp.MustCompile(`(?i)https?://assetsnffrgf-a\.akamaihd\.net/assets/[^\s"'<>]+`)

	// imageSizePattern matches the size token in CDN image filenames,
	// e.g. the "_xl." in "502018167_univ_sqr_xl.jpg".
	imageSizePattern = regexp.MustCompile(`(?i)_(xs|s|m|l|xl)(?:\b|\.|_)`)

	// blankRunPattern matches runs of three or more newlines.
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

const (
	// minContainerText is the minimum visible text length, in runes, a
	// keyword-matched div needs to qualify as the article container.
	minContainerText = 200

	// maxPlayerTextLen is the largest visible text length, in runes, an
	// element with a player-like class may have and still be stripped.
	maxPlayerTextLen = 20

	// maxMetadataTextLen is the largest visible text length, in runes, a
	// block may have and still be stripped as publication metadata.
	maxMetadataTextLen = 250
)

// playerControlNeedles mark player controls when found in aria-label or
// title attribute values.
var playerControlNeedles = []string{"play", "audio", "video"}

// lazySrcAttrs are checked in order when an img carries no data-src or
// src attribute.
var lazySrcAttrs = []string{
	"data-original",
	"data-largest",
	"data-large",
	"data-medium",
	"data-small",
	"data-smallest",
}

// strippedImgAttrs are dropped from an img once its source is resolved.
var strippedImgAttrs = []string{
	"data-src",
	"data-srcset",
	"data-original",
	"data-largest",
	"data-large",
	"data-medium",
	"data-small",
	"data-smallest",
	"srcset",
}

// imageSizeScores ranks CDN size tokens from smallest to largest.
var imageSizeScores = map[string]int{
	"xs": 1,
	"s":  2,
	"m":  3,
	"l":  4,
	"xl": 5,
}
