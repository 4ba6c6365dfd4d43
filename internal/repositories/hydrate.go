package repositories

import (
	"encoding/json"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/gigmatch/match-engine/internal/entities"
	"github.com/pkg/errors"
)

// Availability is stored as a JSON column; skills as a comma-joined
// string. These helpers convert between stored rows and the hydrated
// domain records the engine consumes.

func encodeAvailability(avail models.WeeklyAvailability) ([]byte, error) {
	if avail == nil {
		return nil, nil
	}
	return json.Marshal(avail)
}

func decodeAvailability(raw []byte) (models.WeeklyAvailability, error) {
	if len(raw) == 0 {
		return models.WeeklyAvailability{}, nil
	}
	var avail models.WeeklyAvailability
	if err := json.Unmarshal(raw, &avail); err != nil {
		return nil, errors.Wrap(err, "malformed stored availability")
	}
	return avail, nil
}

func encodeCoordinate(coord *models.Coordinate) (lat, lon *float64) {
	if coord == nil {
		return nil, nil
	}
	return &coord.Latitude, &coord.Longitude
}

func decodeCoordinate(lat, lon *float64) *models.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.Coordinate{Latitude: *lat, Longitude: *lon}
}

func listingToRow(listing models.JobListing) (entities.JobListing, error) {
	avail, err := encodeAvailability(listing.Availability)
	if err != nil {
		return entities.JobListing{}, err
	}
	lat, lon := encodeCoordinate(listing.Location)

	row := entities.JobListing{
		ID:             listing.ID,
		RequiredSkills: models.JoinSkills(listing.RequiredSkills),
		Availability:   avail,
		Latitude:       lat,
		Longitude:      lon,
		SalaryMin:      listing.SalaryRange.Min,
		SalaryMax:      listing.SalaryRange.Max,
		WeeklyHours:    listing.WeeklyHours,
		Category:       listing.Category,
		Open:           true,
	}
	if listing.RequiredExperience != nil {
		row.MinYears = &listing.RequiredExperience.MinYears
	}
	return row, nil
}

func listingToDomain(row entities.JobListing) (models.JobListing, error) {
	avail, err := decodeAvailability(row.Availability)
	if err != nil {
		return models.JobListing{}, errors.Wrapf(err, "listing %v", row.ID)
	}

	listing := models.JobListing{
		ID:             row.ID,
		RequiredSkills: models.SplitSkills(row.RequiredSkills),
		Availability:   avail,
		Location:       decodeCoordinate(row.Latitude, row.Longitude),
		SalaryRange:    models.SalaryRange{Min: row.SalaryMin, Max: row.SalaryMax},
		WeeklyHours:    row.WeeklyHours,
		Category:       row.Category,
	}
	if row.MinYears != nil {
		listing.RequiredExperience = &models.Experience{MinYears: *row.MinYears}
	}
	return listing, nil
}

func profileToRow(profile models.UserProfile) (entities.UserProfile, error) {
	avail, err := encodeAvailability(profile.Availability)
	if err != nil {
		return entities.UserProfile{}, err
	}
	lat, lon := encodeCoordinate(profile.Location)

	row := entities.UserProfile{
		ID:           profile.ID,
		Skills:       models.JoinSkills(profile.Skills),
		Availability: avail,
		Latitude:     lat,
		Longitude:    lon,
		MaxDistance:  profile.MaxDistance,
	}
	if profile.SalaryPrefs != nil {
		row.SalaryMin = &profile.SalaryPrefs.Min
		row.SalaryMax = &profile.SalaryPrefs.Max
	}
	if profile.Experience != nil {
		row.TotalYears = &profile.Experience.TotalYears
	}
	return row, nil
}

func profileToDomain(row entities.UserProfile) (models.UserProfile, error) {
	avail, err := decodeAvailability(row.Availability)
	if err != nil {
		return models.UserProfile{}, errors.Wrapf(err, "profile %v", row.ID)
	}

	profile := models.UserProfile{
		ID:           row.ID,
		Skills:       models.SplitSkills(row.Skills),
		Availability: avail,
		Location:     decodeCoordinate(row.Latitude, row.Longitude),
		MaxDistance:  row.MaxDistance,
	}
	if row.SalaryMin != nil && row.SalaryMax != nil {
		profile.SalaryPrefs = &models.SalaryRange{Min: *row.SalaryMin, Max: *row.SalaryMax}
	}
	if row.TotalYears != nil {
		profile.Experience = &models.WorkExperience{TotalYears: *row.TotalYears}
	}
	return profile, nil
}
