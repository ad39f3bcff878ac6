package email

var PostmarkEmail = postmarkEmail
