package user

import "food-delivery/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Mobile:       u.Mobile,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Address:      u.Address,
		Role:         entities.Role(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ToDomainList(users []UserDB) []entities.User {
	result := make([]entities.User, 0, len(users))
	for i := range users {
		result = append(result, *ToDomain(&users[i]))
	}
	return result
}
