package models

// UserRole identifies who a token was issued to
type UserRole string

// RoleOwner is the single restaurant owner account
const RoleOwner UserRole = "owner"
