package firestore

var EmailDocID = emailDocID
