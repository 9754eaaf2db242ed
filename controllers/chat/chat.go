package chatControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type rule struct {
	keywords []string
	reply    string
}

// Ordered: the first rule with a matching keyword wins.
var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! Welcome to SmartKartStore. How can I help you find the perfect gadget today?",
	},
	{
		keywords: []string{"laptop", "computer"},
		reply:    "We have a great collection of Laptops! You can check out our 'Laptops' category for brands like Apple, Dell, and HP. Are you looking for a gaming laptop or one for work?",
	},
	{
		keywords: []string{"mobile", "phone", "iphone", "android"},
		reply:    "Our Mobile section features the latest iPhones, Samsung Galaxy, and Google Pixel devices. Visit the 'Mobiles' page to see our best sellers!",
	},
	{
		keywords: []string{"price", "cost", "expensive"},
		reply:    "We offer the best prices in the market! Plus, we have special discounts on selected items. You can sort products by price in any category.",
	},
	{
		keywords: []string{"order", "track", "shipping"},
		reply:    "You can track your orders in the 'My Orders' section (click your profile). We usually ship within 24 hours!",
	},
	{
		keywords: []string{"return", "refund"},
		reply:    "We have a hassle-free 7-day return policy for all electronic items. Contact our support if you have any issues.",
	},
	{
		keywords: []string{"thank"},
		reply:    "You're welcome! Happy shopping at SmartKartStore!",
	},
}

const fallbackReply = "That's an interesting question! While I'm an AI assistant, I recommend browsing our categories or using the search bar to find exactly what you need. Can I help you with anything else?"

func replyFor(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(msg, keyword) {
				return r.reply
			}
		}
	}
	return fallbackReply
}

// POST /chat/ask
func Ask() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": replyFor(req.Message)})
	}
}
