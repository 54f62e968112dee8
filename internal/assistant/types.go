package assistant

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ZodiacSigns lists the sign keys accepted in requests and suggested topics.
var ZodiacSigns = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// Person describes one participant of the conversation.
type Person struct {
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	Age        int    `json:"age" validate:"gte=1,lte=120"`
	ZodiacSign string `json:"zodiacSign" validate:"required,oneof=aries taurus gemini cancer leo virgo libra scorpio sagittarius capricorn aquarius pisces"`
}

// ZodiacTopic is a conversation topic suggested by the assistant.
type ZodiacTopic struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	ZodiacSigns []string `json:"zodiacSigns"`
	IsTrending  bool     `json:"isTrending"`
}

type peopleInput struct {
	People []Person `validate:"min=1,max=4,dive"`
}

var validate = validator.New()

// ValidatePeople checks that between one and four well-formed people are given.
func ValidatePeople(people []Person) error {
	if err := validate.Struct(peopleInput{People: people}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
