package services

import "github.com/dailyenglish/backend/internal/models"

// ContentTemplates are the canned notification messages offered by the UI
// alongside the challenge posts.
var ContentTemplates = []models.ContentTemplate{
	{
		Label:   "Grammar Checker",
		Content: "A big round of applause for everyone who joined today's challenge. Thanks for giving it your best — let's keep pushing forward!\n\nTo make your writings even better, giving them one more review with [**Zobite - Grammar Checker**](https://zobite.com/grammar-checker). It gives more accurate corrections and can help you improve quickly. Thank you!",
	},
	{
		Label:   "Thank You",
		Content: "Thank you for participating in today's challenge! Keep up the great work! 💪",
	},
	{
		Label:   "Reminder",
		Content: "Don't forget to complete today's challenge! Stay consistent and practice every day! ⏰",
	},
	{
		Label:   "Encouragement",
		Content: "You're doing great! Keep pushing forward and don't give up! 🌟",
	},
	{
		Label:   "Congratulations",
		Content: "Congratulations on completing the challenge! Keep maintaining your learning habit! 🎉",
	},
}
