package handlers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amaumene/nzbio/internal/constants"
	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/internal/models"
)

var episodeNumberRegex = regexp.MustCompile(`^\d+$`)

func isSupportedType(kind string) bool {
	for _, t := range constants.SupportedTypes {
		if kind == t {
			return true
		}
	}
	return false
}

// parseStreamID turns a route id into a media reference. The router has
// already percent-decoded id, so it is not decoded again. Series ids take the
// form "tt123:season:episode"; anything after the episode is ignored.
func parseStreamID(kind, id string) (models.MediaReference, error) {
	ref := models.MediaReference{ExternalID: id, Kind: kind}

	if kind == constants.TypeSeries {
		parts := strings.Split(id, ":")
		if len(parts) < 3 || !episodeNumberRegex.MatchString(parts[1]) || !episodeNumberRegex.MatchString(parts[2]) {
			return models.MediaReference{}, apperrors.NewInvalidIDError(id)
		}
		ref.ExternalID = parts[0]
		ref.Season, _ = strconv.Atoi(parts[1])
		ref.Episode, _ = strconv.Atoi(parts[2])
		ref.HasEpisode = true
	}

	if !strings.HasPrefix(ref.ExternalID, constants.IMDBPrefix) {
		return models.MediaReference{}, apperrors.NewInvalidIDError(id)
	}
	return ref, nil
}
