// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// DefaultCategories returns the category tree a fresh installation is seeded
// with. IDs are generated on each call; names are what transactions join on.
func DefaultCategories() []*Category {
	specs := []struct {
		name     string
		emoji    string
		isSystem bool
		subs     []string
	}{
		{"Food & Drink", "🍽️", false, []string{"Groceries", "Dining Out", "Takeaway", "Coffee & Snacks", "Alcohol & Drinks"}},
		{"Bills & Utilities", "📄", false, []string{"Gas & Electric", "Water", "Council Tax", "Internet & Phone", "TV Licence", "Mobile Phone"}},
		{"Housing", "🏠", false, []string{"Rent", "Mortgage", "Maintenance & Repairs", "Furnishings", "Garden"}},
		{"Transport", "🚗", false, []string{"Fuel", "Public Transport", "Car Insurance", "Car Tax", "Parking", "Car Maintenance", "Taxi & Uber"}},
		{"Shopping", "🛍️", false, []string{"Clothing", "Electronics", "Household Items", "Gifts", "Online Shopping"}},
		{"Entertainment", "🎬", false, []string{"Streaming Services", "Cinema & Theatre", "Games & Apps", "Music & Concerts", "Hobbies", "Books & Magazines"}},
		{"Health & Wellbeing", "💊", false, []string{"Pharmacy", "Gym & Fitness", "Dentist", "Optician", "Private Healthcare", "Beauty & Personal Care"}},
		{"Insurance", "🛡️", false, []string{"Home Insurance", "Life Insurance", "Pet Insurance", "Travel Insurance", "Health Insurance"}},
		{"Travel & Holidays", "✈️", false, []string{"Flights", "Hotels & Accommodation", "Activities & Tours", "Holiday Food & Drink"}},
		{"Children", "👶", false, []string{"Childcare", "School Fees & Supplies", "Activities & Clubs", "Children Clothing", "Toys & Games"}},
		{"Pets", "🐾", false, []string{"Pet Food", "Vet Bills", "Pet Supplies", "Grooming"}},
		{CategoryIncome, "💰", false, []string{"Salary", "Benefits", "Interest", "Refunds", "Side Income", "Gifts Received"}},
		{"Savings & Investments", "📈", false, []string{"Savings", "ISA", "Pension", "Investments"}},
		{"Fees & Charges", "💳", false, []string{"Bank Fees", "Credit Card Fees", "ATM Fees", "Late Payment Fees"}},
		{"Subscriptions", "🔄", false, []string{"Software & Apps", "Memberships", "News & Publications", "Other Subscriptions"}},
		{"Education", "📚", false, []string{"Courses", "Books & Materials", "Tuition Fees"}},
		{"Charity & Donations", "❤️", false, []string{"Charity Donations", "Fundraising", "Religious Donations"}},
		{CategoryTransfer, "↔️", true, nil},
		{CategoryUncategorized, "❓", true, nil},
	}

	categories := make([]*Category, 0, len(specs))
	for i, spec := range specs {
		sortOrder := i
		// System categories sit at the bottom of every list.
		if spec.isSystem {
			sortOrder = 98 + (i - (len(specs) - 2))
		}
		subs := make([]Subcategory, 0, len(spec.subs))
		for j, name := range spec.subs {
			subs = append(subs, Subcategory{ID: uuid.New(), Name: name, SortOrder: j})
		}
		categories = append(categories, &Category{
			ID:            uuid.New(),
			Name:          spec.name,
			Emoji:         spec.emoji,
			IsDefault:     true,
			IsSystem:      spec.isSystem,
			SortOrder:     sortOrder,
			Subcategories: subs,
		})
	}
	return categories
}
