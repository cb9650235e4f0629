package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/tally --output domain/tally --outpkg tallymock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name KeyValueStore --dir ../domain/tally --output domain/tally --outpkg tallymock --filename key_value_store_mock.go
