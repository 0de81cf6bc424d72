package handler

import "addressbook/internal/domain/entity"

// UserResponse is the public view of a user. Password and token are never exposed here.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResponse adds the freshly issued token to the user view.
type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// ContactResponse is the public view of a contact. Absent optional fields render as null.
type ContactResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         string  `json:"id"`
	ContactID  string  `json:"contactId"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

func toLoginResponse(user *entity.User) *LoginResponse {
	resp := &LoginResponse{
		Username: user.Username,
		Name:     user.Name,
	}
	if user.Token != nil {
		resp.Token = *user.Token
	}

	return resp
}

func toContactResponse(contact *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		Username:  contact.Username,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

func toContactResponses(contacts []*entity.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactResponse(contact))
	}

	return out
}

func toAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		ContactID:  address.ContactID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

func toAddressResponses(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressResponse(address))
	}

	return out
}
