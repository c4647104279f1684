// internal/domain/models/teacher.go
package models

// Teacher is a record in the teacher directory collection. The
// directory is owned by the account-management side of the system;
// this service only reads it to verify that a caller-supplied username
// belongs to a real teacher.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name" json:"display_name"`
	Role        string `bson:"role,omitempty" json:"role,omitempty"`
}
