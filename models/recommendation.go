package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is an event: the same property may be recommended to the same
// recipient any number of times. RecipientEmail is stored lower-cased.
type Recommendation struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecommenderUserID string             `bson:"recommenderUserId" json:"recommenderUserId"`
	RecommenderEmail  string             `bson:"recommenderEmail" json:"recommenderEmail"`
	RecommenderName   string             `bson:"recommenderName,omitempty" json:"recommenderName,omitempty"`
	RecipientEmail    string             `bson:"recipientEmail" json:"recipientEmail"`
	PropertyID        string             `bson:"propertyId" json:"propertyId"`
	Message           string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

type RecommendationRequest struct {
	PropertyID     string `json:"propertyId"`
	RecipientEmail string `json:"recipientEmail"`
	Message        string `json:"message,omitempty"`
}

type RecommendationDetails struct {
	RecommenderName  string `json:"recommenderName,omitempty"`
	RecommenderEmail string `json:"recommenderEmail"`
	Message          string `json:"message,omitempty"`
	RecommendedAt    string `json:"recommendedAt"`
}

// ReceivedRecommendation is a property joined with the recommendation that pointed at it.
type ReceivedRecommendation struct {
	Property
	RecommendationDetails RecommendationDetails `json:"recommendationDetails"`
}
