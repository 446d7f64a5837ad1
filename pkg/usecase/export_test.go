package usecase

var CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
