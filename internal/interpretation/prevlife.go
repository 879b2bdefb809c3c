package interpretation

import (
	"fmt"
	"strings"

	"github.com/lunehq/lune/internal/models"
)

// BuildPreviousLifeSection folds the carried-pattern brief into a titled
// narrative block. Neutral wording throughout; the pattern is framed as a
// chart suggestion, never a factual claim.
func BuildPreviousLifeSection(brief *models.PreviousLifeBrief) Section {
	sentences := []string{
		fmt.Sprintf("The chart suggests an inherited pattern reflected in the twelfth house: %s", brief.Theme),
		brief.CarriedStrengths,
		brief.CarriedChallenges,
		fmt.Sprintf("This carries into the present life as: %s", brief.PresentLifeShift),
	}

	return Section{
		Title: "Previous Life Themes",
		Text:  strings.Join(sentences, " "),
	}
}
