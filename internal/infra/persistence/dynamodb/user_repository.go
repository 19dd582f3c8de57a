package dynamodb

import (
	"context"
	"time"

	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/repository"
	"unifeast/internal/errors"
	"unifeast/internal/infra/persistence/model"
	"unifeast/internal/infra/persistence/normalizer"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// userRepository implements repository.ProfileStore on the users table.
type userRepository struct {
	client API
	table  string
	now    func() time.Time
}

// NewUserRepository creates the secondary profile store.
func NewUserRepository(client API, table string) repository.ProfileStore {
	return &userRepository{
		client: client,
		table:  table,
		now:    time.Now,
	}
}

func (repo *userRepository) Name() string {
	return repository.StoreSecondary
}

// FindByID reads the item with a strongly consistent read.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	out, err := repo.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(repo.table),
		Key:            userKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user item")
	}
	if len(out.Item) == 0 {
		return nil, repository.ErrProfileNotFound
	}

	var item model.UserItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, errors.Wrap(err, "failed to decode user item")
	}

	return normalizer.FromSecondary(&item), nil
}

// Create puts the item on condition that no item with the same key exists.
func (repo *userRepository) Create(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	item := normalizer.ToSecondary(profile)
	now := normalizer.FormatTimestamp(repo.now())
	if item.CreatedAt == "" {
		item.CreatedAt = now
	}
	if item.UpdatedAt == "" {
		item.UpdatedAt = now
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode user item")
	}

	cond := expression.AttributeNotExists(expression.Name(model.AttrUserID))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build create condition")
	}

	_, err = repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(repo.table),
		Item:                     av,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, repository.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to put user item")
	}

	return normalizer.FromSecondary(item), nil
}

// Update sets the supplied attributes on an existing item and returns all attributes after the update.
func (repo *userRepository) Update(ctx context.Context, id string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	attrs := normalizer.SecondaryAttributes(patch)
	if len(attrs) == 0 {
		return repo.FindByID(ctx, id)
	}

	update := expression.Set(expression.Name(model.AttrUpdatedAt), expression.Value(normalizer.FormatTimestamp(repo.now())))
	for name, value := range attrs {
		update = update.Set(expression.Name(name), expression.Value(value))
	}
	cond := expression.AttributeExists(expression.Name(model.AttrUserID))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build update expression")
	}

	out, err := repo.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(repo.table),
		Key:                       userKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update user item")
	}

	var item model.UserItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, errors.Wrap(err, "failed to decode updated user item")
	}

	return normalizer.FromSecondary(&item), nil
}

// Delete removes the item; a missing item is not an error.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	_, err := repo.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(repo.table),
		Key:       userKey(id),
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user item")
	}

	return nil
}

func userKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		model.AttrUserID: &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	_, ok := errors.Find[*types.ConditionalCheckFailedException](err)

	return ok
}
