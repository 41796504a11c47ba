package dto

type ProfileUpdateRequest struct {
	AddressStreet string `json:"address_street" form:"address_street"`
	AddressHouse  string `json:"address_house" form:"address_house"`
}

type ProfileResponse struct {
	User          UserResponse `json:"user"`
	AddressStreet string       `json:"address_street"`
	AddressHouse  string       `json:"address_house"`
	Logo          string       `json:"logo"`
}
