package response

// Messages returned by state-changing endpoints.
const (
	MsgClaimSubmitted  = "Your request to become a store owner has been submitted for admin review."
	MsgRatingSubmitted = "Rating submitted successfully"
	MsgUserVerified    = "User verified and converted to Store Owner."
)
