package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OtaoDavis/Tfit-app/config"
	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/utils"
)

type ProfileInput struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Birthday         string  `json:"birthday"` // sent as YYYY-MM-DD
	Height           float64 `json:"height"`
	Weight           float64 `json:"weight"`
	HealthConditions string  `json:"health_conditions"`
	FitnessGoals     string  `json:"fitness_goals"`
	ProfilePicture   string  `json:"profile_picture"` // base64 data URL
	Onboarded        bool    `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"birthday":          user.Birthday.Format("2006-01-02"),
		"age":               age,
		"height":            user.Height,
		"weight":            user.Weight,
		"health_conditions": user.HealthConditions,
		"fitness_goals":     user.FitnessGoals,
		"profile_picture":   user.ProfilePicture,
		"mfa_enabled":       user.MFAEnabled,
		"onboarded":         user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}

	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}

	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64Image(input.ProfilePicture, "profile-pictures", user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = input.Onboarded

	return config.DB.Save(user).Error
}

// DeleteUser disables the account; rows are kept for audit.
func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return errors.New("user not found")
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
